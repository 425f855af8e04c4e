package core

// Action represents a semantic input intent, abstracted from physical key presses.
// The simulation reacts to actions only and never sees key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // Enter, R - restart after game over
	ActionQuit           // Q, Esc, Ctrl+C - close the window
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement intents.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// EventQueue is a FIFO of pending actions collected between frames.
// The frame loop drains it with Poll until it reports false.
type EventQueue struct {
	events []Action
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an action. ActionNone is dropped.
func (q *EventQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.events = append(q.events, a)
}

// Poll removes and returns the oldest action.
// Returns (ActionNone, false) once the queue is exhausted.
func (q *EventQueue) Poll() (Action, bool) {
	if len(q.events) == 0 {
		return ActionNone, false
	}
	a := q.events[0]
	q.events[0] = ActionNone
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return a, true
}

// Len returns the number of pending actions.
func (q *EventQueue) Len() int {
	return len(q.events)
}
