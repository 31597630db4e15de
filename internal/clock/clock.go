// Package clock measures elapsed time for the frame loop.
package clock

import "time"

// Source returns the time elapsed since some fixed origin. It must never go backwards.
type Source func() time.Duration

// Clock reports elapsed seconds and per-frame deltas.
//
// Tick is meant to be called exactly once per frame; calling it more or
// less often keeps it correct but changes what a "frame delta" means to
// whoever consumes it.
type Clock struct {
	src  Source
	prev float64
}

// New returns a Clock driven by the monotonic reading of time.Now,
// so wall-clock adjustments do not affect it.
func New() *Clock {
	start := time.Now()
	return NewWithSource(func() time.Duration { return time.Since(start) })
}

// NewWithSource returns a Clock driven by src.
func NewWithSource(src Source) *Clock {
	c := &Clock{src: src}
	c.prev = c.Now()
	return c
}

// Now returns the elapsed seconds since the clock started.
func (c *Clock) Now() float64 {
	return c.src().Seconds()
}

// Tick returns the seconds elapsed since the previous Tick (or since New).
func (c *Clock) Tick() float64 {
	now := c.Now()
	dt := now - c.prev
	c.prev = now
	return dt
}
