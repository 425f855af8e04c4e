package snake

// Body is the ordered list of cells occupied by the snake.
// Index 0 is the head (most recently added), the last element is the tail.
type Body struct {
	cells []Cell
}

// NewBody creates a single-segment body.
func NewBody(head Cell) Body {
	return Body{cells: []Cell{head}}
}

// BodyOf creates a body from cells ordered head first.
func BodyOf(cells ...Cell) Body {
	return Body{cells: append([]Cell(nil), cells...)}
}

// Len returns the number of segments.
func (b Body) Len() int {
	return len(b.cells)
}

// Head returns the front segment. The body is never empty during play.
func (b Body) Head() Cell {
	return b.cells[0]
}

// Tail returns the back segment.
func (b Body) Tail() Cell {
	return b.cells[len(b.cells)-1]
}

// Contains reports whether any segment occupies c.
func (b Body) Contains(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments, head first.
func (b Body) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

func (b *Body) pushFront(c Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = c
}

func (b *Body) popBack() Cell {
	tail := b.cells[len(b.cells)-1]
	b.cells = b.cells[:len(b.cells)-1]
	return tail
}
