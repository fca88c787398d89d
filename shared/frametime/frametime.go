// Package frametime provides the per-tick timing fed to the fighters.
package frametime

import "github.com/automoto/streetbrawl/shared/fighterdata"

// FrameTime is the timing of one tick. SecondsPassed drives velocity
// integration, Previous (milliseconds) is the animation reference clock.
type FrameTime struct {
	SecondsPassed float64
	Previous      float64
}

// Clock turns fixed-rate ticks into FrameTime values. The zero value has not
// started; the first Tick resolves the start and reports no elapsed time.
type Clock struct {
	started bool
	ticks   int64
	tps     float64
}

// NewClock returns a clock advancing at ticksPerSecond.
func NewClock(ticksPerSecond int) *Clock {
	return &Clock{tps: float64(ticksPerSecond)}
}

// Tick advances the clock by one tick and returns its timing.
func (c *Clock) Tick() FrameTime {
	tps := c.tps
	if tps <= 0 {
		tps = 1000 / fighterdata.FrameTimeMs
	}
	if !c.started {
		c.started = true
		return FrameTime{}
	}
	c.ticks++
	return FrameTime{
		SecondsPassed: 1 / tps,
		Previous:      float64(c.ticks) * 1000 / tps,
	}
}

// Started reports whether Tick has been called.
func (c *Clock) Started() bool {
	return c.started
}

// Ticks returns the number of ticks since the start.
func (c *Clock) Ticks() int64 {
	return c.ticks
}
