package snake

// Snapshot is a read-only copy of the simulation state handed to the renderer.
// Mutating a snapshot never affects the game.
type Snapshot struct {
	Board   Board
	Body    []Cell // Head first
	Heading Heading
	Food    Cell
	HasFood bool
	Score   int
	Phase   Phase
	Cause   Outcome
	Steps   uint64
	Round   int // 1 for the first game, incremented on each restart
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board,
		Body:    g.body.Cells(),
		Heading: g.heading,
		Food:    g.food,
		HasFood: g.hasFood,
		Score:   g.score,
		Phase:   g.phase,
		Cause:   g.cause,
		Steps:   g.steps,
		Round:   g.resets,
	}
}

// Head returns the head cell, or false for an empty snapshot.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Body) == 0 {
		return Cell{}, false
	}
	return s.Body[0], true
}
