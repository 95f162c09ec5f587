package scene

import "time"

// Clock measures animation time in seconds since start, excluding time spent
// paused. It never runs backwards.
type Clock struct {
	start    time.Time
	pausedAt time.Time
	paused   bool
	offset   time.Duration
}

// NewClock starts a clock at now.
func NewClock(now time.Time) *Clock {
	return &Clock{start: now}
}

// Elapsed returns the animation time at now.
func (c *Clock) Elapsed(now time.Time) float64 {
	if c.paused {
		now = c.pausedAt
	}
	d := now.Sub(c.start) - c.offset
	if d < 0 {
		d = 0
	}
	return d.Seconds()
}

// Pause freezes the clock at now. Pausing twice has no effect.
func (c *Clock) Pause(now time.Time) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume continues counting from the time the clock was paused.
func (c *Clock) Resume(now time.Time) {
	if !c.paused {
		return
	}
	c.offset += now.Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}
