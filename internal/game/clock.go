package game

import "time"

// Clock turns wall time into simulation steps. With a zero fixed step it
// yields one step per frame carrying the measured delta. Otherwise it
// accumulates time and yields whole fixed steps, at most maxSteps per frame;
// time beyond that budget is dropped.
type Clock struct {
	fixedMs  float64
	maxSteps int

	acc  float64
	last time.Time
	now  func() time.Time
}

func NewClock(fixedMs float64, maxSteps int) *Clock {
	c := &Clock{fixedMs: fixedMs, maxSteps: maxSteps, now: time.Now}
	c.last = c.now()
	return c
}

// Tick returns how many steps to run this frame and the delta for each, in
// milliseconds.
func (c *Clock) Tick() (steps int, dtMs float64) {
	now := c.now()
	elapsed := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}

	if c.fixedMs <= 0 {
		return 1, elapsed
	}

	c.acc += elapsed
	steps = int(c.acc / c.fixedMs)
	if steps > c.maxSteps {
		steps = c.maxSteps
		c.acc = 0
	} else {
		c.acc -= float64(steps) * c.fixedMs
	}
	return steps, c.fixedMs
}
