package ratelimit

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLimiter_Allow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := NewLimiter(time.Second, 3).WithClock(clock.Now)

	// First 3 requests should succeed
	for i := 0; i < 3; i++ {
		if !limiter.Allow("test-key") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 4th request should be blocked
	if limiter.Allow("test-key") {
		t.Error("4th request should be blocked")
	}

	clock.Advance(1100 * time.Millisecond)

	// Should be allowed again
	if !limiter.Allow("test-key") {
		t.Error("Request after window expiry should be allowed")
	}
}

func TestLimiter_Cooldown(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := NewLimiter(300*time.Second, 1).WithClock(clock.Now)

	if wait := limiter.RetryAfter("cj"); wait != 0 {
		t.Errorf("Expected no wait before first request, got %s", wait)
	}
	if !limiter.Allow("cj") {
		t.Fatal("First acquisition should be allowed")
	}

	clock.Advance(100 * time.Second)
	if limiter.Allow("cj") {
		t.Error("Second acquisition inside the cooldown should be blocked")
	}
	if wait := limiter.RetryAfter("cj"); wait != 200*time.Second {
		t.Errorf("Expected 200s wait, got %s", wait)
	}

	clock.Advance(200 * time.Second)
	if !limiter.Allow("cj") {
		t.Error("Acquisition after the cooldown should be allowed")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(time.Minute, 1)

	if !limiter.Allow("key1") || !limiter.Allow("key2") {
		t.Error("First request per key should be allowed")
	}
	if limiter.Allow("key1") {
		t.Error("Second request for key1 should be blocked")
	}
}
