// Package snake implements the single-player snake simulation: the board,
// the snake body, food placement, the Playing/GameOver state machine and
// the fixed-tick frame loop that drives it. It has no terminal dependency.
package snake

import "fmt"

// Cell is a discrete (column, row) grid coordinate.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by the heading's unit vector.
func (c Cell) Add(h Heading) Cell {
	dc, dr := h.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Board is a fixed-size grid of Cols × Rows cells.
type Board struct {
	Cols int
	Rows int
}

// NewBoard derives the grid from pixel dimensions and a cell size,
// e.g. 800×600 with 20px cells gives 40×30.
func NewBoard(width, height, cellSize int) (Board, error) {
	if cellSize <= 0 {
		return Board{}, fmt.Errorf("snake: cell size must be positive, got %d", cellSize)
	}
	b := Board{Cols: width / cellSize, Rows: height / cellSize}
	if b.Cols <= 0 || b.Rows <= 0 {
		return Board{}, fmt.Errorf("snake: board %dx%d with cell size %d has no cells", width, height, cellSize)
	}
	return b, nil
}

// Contains reports whether the cell lies inside [0,Cols) × [0,Rows).
func (b Board) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < b.Cols && c.Row >= 0 && c.Row < b.Rows
}

// Center returns the starting cell (Cols/2, Rows/2).
func (b Board) Center() Cell {
	return Cell{Col: b.Cols / 2, Row: b.Rows / 2}
}

// Area returns the number of cells on the board.
func (b Board) Area() int {
	return b.Cols * b.Rows
}
