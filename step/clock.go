package step

import (
	"sync"
	"time"
)

// Clock is the time source used to measure a solver run. Algorithms never
// read the clock themselves; the caller that wraps them does.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a deterministic Clock for tests and reproducible traces.
// Each call to Now returns the current instant and then advances it by Step.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManualClock returns a ManualClock starting at start and advancing by
// step on every read.
func NewManualClock(start time.Time, step time.Duration) *ManualClock {
	return &ManualClock{now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)

	return t
}
