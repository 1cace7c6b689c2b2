package engine

// Clock accumulates frame time. The periodic motion is evaluated at the
// absolute time, so a clock that starts above zero skips the moment where
// every cosine is 1 and all circles move in lockstep.
type Clock struct {
	now float64
}

func NewClock(start float64) *Clock { return &Clock{now: start} }

// Advance adds dt and returns the new time. Negative dt is ignored.
func (c *Clock) Advance(dt float64) float64 {
	if dt > 0 {
		c.now += dt
	}
	return c.now
}

func (c *Clock) Now() float64 { return c.now }
