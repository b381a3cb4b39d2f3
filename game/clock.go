package game

import "time"

type Clock interface {
	// Tick blocks until the next tick is due and returns the time since the previous one
	Tick() time.Duration
}

// FixedClock caps the loop at a fixed number of ticks per second
type FixedClock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

func NewFixedClock(interval time.Duration) *FixedClock {
	return &FixedClock{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (c *FixedClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	if wait := c.interval - now.Sub(c.last); wait > 0 {
		c.sleep(wait)
		now = c.now()
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}
