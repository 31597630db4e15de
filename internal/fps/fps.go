// Package fps computes a frames-per-second rate at a fixed reporting cadence.
package fps

import "time"

// Counter counts frames and recomputes its rate once per interval.
// Rate returns the cached value, so reads between reports are stable.
type Counter struct {
	interval float64
	now      func() float64

	frames     int
	lastReport float64
	rate       float64
}

// New returns a Counter reporting every interval, timed by now (seconds).
func New(interval time.Duration, now func() float64) *Counter {
	return &Counter{
		interval:   interval.Seconds(),
		now:        now,
		lastReport: now(),
	}
}

// OnFrame records one frame and refreshes the rate if the interval has passed.
func (c *Counter) OnFrame() {
	c.frames++

	t := c.now()
	elapsed := t - c.lastReport
	if elapsed <= c.interval {
		return
	}

	c.rate = float64(c.frames) / elapsed
	c.frames = 0
	c.lastReport = t
}

// Rate returns the most recently computed rate.
func (c *Counter) Rate() float64 {
	return c.rate
}
