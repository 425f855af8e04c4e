package snake

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FrameResult reports what one frame did.
type FrameResult struct {
	Quit    bool    // a quit intent was polled this frame
	Stepped bool    // the simulation advanced one tick
	Outcome Outcome // result of the step, OutcomeIdle if none
}

// Loop drives a Game one frame at a time: drain the input queue, then
// advance the simulation at most once when a full tick interval of real
// time has accumulated. Rendering happens outside, between frames.
type Loop struct {
	game   *Game
	queue  *core.EventQueue
	clock  core.Clock
	acc    *core.Accumulator
	logger *log.Logger
	frames uint64
	held   bool
}

// NewLoop creates a loop stepping game every interval of clock time.
func NewLoop(game *Game, clock core.Clock, interval time.Duration, logger *log.Logger) *Loop {
	return &Loop{
		game:   game,
		queue:  core.NewEventQueue(),
		clock:  clock,
		acc:    core.NewAccumulator(interval),
		logger: logger,
	}
}

// Game returns the simulation driven by this loop.
func (l *Loop) Game() *Game {
	return l.game
}

// Push queues an input intent for the next frame.
func (l *Loop) Push(a core.Action) {
	l.queue.Push(a)
}

// Interval returns the simulation step interval.
func (l *Loop) Interval() time.Duration {
	return l.acc.Interval()
}

// Hold pauses or resumes stepping. Input is still drained while held, and
// time accumulated while held is discarded so resuming never steps at once.
func (l *Loop) Hold(held bool) {
	if held == l.held {
		return
	}
	l.held = held
	if held {
		l.logger.Info("paused", "reason", "screen too small")
	} else {
		l.logger.Info("resumed")
	}
}

// Held reports whether stepping is paused.
func (l *Loop) Held() bool {
	return l.held
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs one iteration of the control loop.
func (l *Loop) Frame() FrameResult {
	l.frames++
	var res FrameResult

	for {
		a, ok := l.queue.Poll()
		if !ok {
			break
		}
		before := l.game.Phase()
		if l.game.Handle(a) {
			// Intents queued behind a quit are never applied.
			res.Quit = true
			break
		}
		if before == PhaseGameOver && l.game.Phase() == PhasePlaying {
			food, _ := l.game.Food()
			l.logger.Info("restart", "food", food)
		}
	}

	l.acc.Observe(l.clock.Elapsed())
	if l.held {
		l.acc.Consume()
	} else if l.game.Phase() == PhasePlaying && l.acc.Ready() {
		l.acc.Consume()
		res.Stepped = true
		res.Outcome = l.game.Step()

		switch {
		case res.Outcome.Lethal():
			l.logger.Info("game over",
				"cause", res.Outcome,
				"score", l.game.Score(),
				"length", l.game.Body().Len())
		case res.Outcome == OutcomeAte:
			food, present := l.game.Food()
			l.logger.Debug("food eaten", "score", l.game.Score(), "next", food, "present", present)
		}
	}

	if res.Quit {
		l.logger.Info("quit", "frames", l.frames, "score", l.game.Score())
	}
	return res
}
