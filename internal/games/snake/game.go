package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeIdle    Outcome = iota // Step called outside Playing
	OutcomeMoved                  // head advanced, tail removed
	OutcomeAte                    // head advanced onto food, snake grew
	OutcomeHitWall                // next head left the board
	OutcomeHitSelf                // next head landed on the body
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeHitSelf:
		return "hit_self"
	default:
		return "idle"
	}
}

// Lethal reports whether the outcome ended the game.
func (o Outcome) Lethal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// Game holds the complete simulation state. It is owned by a single
// control loop and never touched concurrently.
type Game struct {
	board   Board
	spawner *Spawner

	body    Body
	heading Heading // direction of the last step
	pending Heading // direction for the next step
	food    Cell
	hasFood bool
	score   int
	phase   Phase
	cause   Outcome // lethal outcome that ended the game
	steps   uint64
	resets  int
}

// New creates a game on the given board and puts it in its initial state.
func New(board Board, spawner *Spawner) *Game {
	g := &Game{board: board, spawner: spawner}
	g.Reset()
	return g
}

// Reset re-initializes the game: one segment at the board center heading right,
// score zero, Playing, and a freshly spawned food cell.
func (g *Game) Reset() {
	g.body = NewBody(g.board.Center())
	g.heading = HeadingRight
	g.pending = HeadingRight
	g.score = 0
	g.phase = PhasePlaying
	g.cause = OutcomeIdle
	g.steps = 0
	g.resets++
	g.spawnFood()
}

func (g *Game) spawnFood() {
	g.food, g.hasFood = g.spawner.Spawn(g.board, g.body)
}

// Handle applies one input intent and reports whether it requests quitting.
// Quit is honored in any phase; restart only after game over; direction
// intents only while playing.
func (g *Game) Handle(a core.Action) (quit bool) {
	switch {
	case a == core.ActionQuit:
		return true
	case g.phase == PhaseGameOver:
		if a == core.ActionRestart {
			g.Reset()
		}
	case a.IsDirection():
		if h, ok := headingFor(a); ok {
			g.Turn(h)
		}
	}
	return false
}

// Turn sets the heading for the next step. A turn back onto the current
// heading's reverse is rejected. Returns whether the turn was accepted.
func (g *Game) Turn(h Heading) bool {
	if g.phase != PhasePlaying || h == g.heading.Opposite() {
		return false
	}
	g.pending = h
	return true
}

// Step advances the simulation by exactly one tick.
func (g *Game) Step() Outcome {
	if g.phase != PhasePlaying {
		return OutcomeIdle
	}

	heading := g.pending
	next := g.body.Head().Add(heading)

	if !g.board.Contains(next) {
		return g.end(OutcomeHitWall)
	}
	// The whole body counts, tail included: it has not moved yet.
	if g.body.Contains(next) {
		return g.end(OutcomeHitSelf)
	}

	g.heading = heading
	g.steps++
	g.body.pushFront(next)

	if g.hasFood && next == g.food {
		g.score++
		g.spawnFood()
		return OutcomeAte
	}

	g.body.popBack()
	return OutcomeMoved
}

func (g *Game) end(cause Outcome) Outcome {
	g.phase = PhaseGameOver
	g.cause = cause
	return cause
}

// Board returns the grid dimensions.
func (g *Game) Board() Board {
	return g.board
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of food cells eaten since the last reset.
func (g *Game) Score() int {
	return g.score
}

// Heading returns the direction of travel of the last step.
func (g *Game) Heading() Heading {
	return g.heading
}

// PendingHeading returns the direction the next step will take.
func (g *Game) PendingHeading() Heading {
	return g.pending
}

// Body returns a copy of the snake.
func (g *Game) Body() Body {
	return BodyOf(g.body.cells...)
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (Cell, bool) {
	return g.food, g.hasFood
}

// Cause returns the outcome that ended the game, or OutcomeIdle while playing.
func (g *Game) Cause() Outcome {
	return g.cause
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Steps: %d, Score: %d, Phase: %s\n", g.steps, g.score, g.phase)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Pending: %s\n", g.body.Len(), g.heading, g.pending)
	fmt.Fprintf(&b, "Head: %s, Food: %s (present: %v)\n", g.body.Head(), g.food, g.hasFood)
	return b.String()
}
