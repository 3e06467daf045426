package core

import "time"

// StepClock gates simulation steps to a fixed wall-clock interval so a slow
// or fast render loop does not change simulation speed.
type StepClock struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepClock constructs a clock that fires once per interval. The
// accumulator starts full so the first query fires immediately.
func NewStepClock(interval time.Duration) *StepClock {
	c := &StepClock{}
	c.SetInterval(interval)
	c.accumulator = c.interval
	return c
}

// SetInterval changes the step cadence. It is safe to call from the main loop.
func (c *StepClock) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 4
	}
	c.interval = interval
}

// Reset forgets any accumulated time so the next step is due one full
// interval after the next query. Call it when the simulation resumes after a
// pause; otherwise the paused duration would be replayed as a burst of steps.
func (c *StepClock) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}

// ShouldStep reports whether one simulation step is due. It grants at most
// one step per query and caps the leftover backlog at one interval, so when
// the interval is shorter than a frame the cadence tops out at one
// generation per frame instead of bursting to catch up.
func (c *StepClock) ShouldStep() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.interval {
		c.accumulator -= c.interval
		if c.accumulator > c.interval {
			c.accumulator = c.interval
		}
		return true
	}
	return false
}
