package core

import "time"

// Accumulator gates fixed-interval simulation steps on real elapsed time.
// Frames feed it the clock reading; it fires at most once per frame and
// restarts from zero when it does, so a long stall never produces a burst of steps.
type Accumulator struct {
	interval time.Duration
	acc      time.Duration
	last     time.Duration
	started  bool
}

// NewAccumulator creates an accumulator that fires after more than interval has elapsed.
func NewAccumulator(interval time.Duration) *Accumulator {
	return &Accumulator{interval: interval}
}

// Interval returns the configured step interval.
func (a *Accumulator) Interval() time.Duration {
	return a.interval
}

// Observe adds the time passed since the previous observation.
// The first observation only records the reading.
func (a *Accumulator) Observe(now time.Duration) {
	if !a.started {
		a.started = true
		a.last = now
		return
	}
	if delta := now - a.last; delta > 0 {
		a.acc += delta
	}
	a.last = now
}

// Ready reports whether strictly more than one interval has accumulated.
func (a *Accumulator) Ready() bool {
	return a.acc > a.interval
}

// Consume resets the accumulated time after a step has been taken.
func (a *Accumulator) Consume() {
	a.acc = 0
}

// Pending returns the time accumulated since the last step.
func (a *Accumulator) Pending() time.Duration {
	return a.acc
}
