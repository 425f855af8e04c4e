package core

import "time"

// Clock reports monotonic elapsed time since it was created.
type Clock interface {
	Elapsed() time.Duration
}

// SystemClock reads the monotonic component of the wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Elapsed returns the time since the clock was started.
func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock advanced explicitly, used to drive the frame loop in tests.
type ManualClock struct {
	now time.Duration
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Elapsed returns the total time advanced so far.
func (c *ManualClock) Elapsed() time.Duration {
	return c.now
}
