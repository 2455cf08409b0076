package ratelimit

import (
	"sync"
	"time"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.cleanup(now)
	c, exists := l.counters[key]

	if !exists {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// RetryAfter returns how long until the key's window resets, or zero if requests are allowed.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, exists := l.counters[key]
	if !exists || c.count < l.max {
		return 0
	}
	wait := c.expiresAt.Sub(l.now())
	if wait < 0 {
		return 0
	}
	return wait
}

// cleanup removes expired counters; callers hold mu.
func (l *Limiter) cleanup(now time.Time) {
	for key, c := range l.counters {
		if !now.Before(c.expiresAt) {
			delete(l.counters, key)
		}
	}
}
