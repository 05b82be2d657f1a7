package providers

import (
	"sync"
	"time"

	domainproviders "github.com/zatekoja/servicemarket/internal/domain/providers"
)

// MonotonicClock implements the Clock interface over the system clock,
// clamping so that successive calls never go backwards even if the
// wall clock is adjusted.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
}

// NewMonotonicClock creates a new monotonic clock
func NewMonotonicClock() domainproviders.Clock {
	return &MonotonicClock{}
}

// Now returns the current UTC time, never earlier than the previous call
func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}
