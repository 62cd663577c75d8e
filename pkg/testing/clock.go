package testing

import (
	"sync"
	"time"
)

// Stepper delivers one frame to its animations. *animation.Scheduler
// satisfies it.
type Stepper interface {
	Step()
}

// FakeClock is a manual animation.Clock. Time moves only through Advance or
// Frame, so lap positions in tests are exact.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock stopped at 2024-01-01 UTC.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without delivering a frame.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Frame advances the clock by d and then steps s once, the way a host loop
// delivers a frame after d has passed.
func (c *FakeClock) Frame(s Stepper, d time.Duration) {
	c.Advance(d)
	s.Step()
}
