package core

import "time"

// Tick is a monotonic timestamp in milliseconds since the frame driver started.
type Tick int64

// Clock supplies wall-clock readings to the frame driver.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameClock converts clock readings into ticks relative to a start time.
type FrameClock struct {
	start   time.Time
	started bool
	last    Tick
}

// Start sets the origin. Calling Start again re-bases the clock.
func (c *FrameClock) Start(now time.Time) {
	c.start = now
	c.started = true
	c.last = 0
}

// Tick returns milliseconds elapsed since Start. The result never decreases,
// even if the underlying readings do.
func (c *FrameClock) Tick(now time.Time) Tick {
	if !c.started {
		c.Start(now)
	}
	t := Tick(now.Sub(c.start).Milliseconds())
	if t < c.last {
		return c.last
	}
	c.last = t
	return t
}
