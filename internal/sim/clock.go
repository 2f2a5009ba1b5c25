package sim

import (
	"math"
	"time"
)

// Clock is a logical repeating timer driven by explicit elapsed time.
// A clock with a non-positive period never fires.
type Clock struct {
	period time.Duration
	acc    time.Duration
	paused bool
}

// NewClock creates a clock that fires once per period.
func NewClock(period time.Duration) Clock {
	return Clock{period: period}
}

// Remaining returns the time until the next firing.
// Paused and disabled clocks report the maximum duration.
func (c *Clock) Remaining() time.Duration {
	if c.paused || c.period <= 0 {
		return math.MaxInt64
	}
	return c.period - c.acc
}

// Elapse moves the clock forward by d and reports how many times it fired.
func (c *Clock) Elapse(d time.Duration) int {
	if c.paused || c.period <= 0 || d <= 0 {
		return 0
	}
	c.acc += d
	fired := int(c.acc / c.period)
	c.acc %= c.period
	return fired
}

// Pause stops the clock. Accumulated time is kept.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume restarts a paused clock where it left off.
func (c *Clock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}
