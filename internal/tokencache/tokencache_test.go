package tokencache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/evandalmeida/eDashboard/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type acquirer struct {
	calls  int
	expiry time.Time
	err    error
}

func (a *acquirer) acquire(_ context.Context) (Token, error) {
	a.calls++
	if a.err != nil {
		return Token{}, a.err
	}
	return Token{Value: fmt.Sprintf("tok-%d", a.calls), Expiry: a.expiry}, nil
}

func TestGetReusesTokenUntilExpiry(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	acq := &acquirer{expiry: clk.t.Add(time.Hour)}
	c := New(acq.acquire, WithClock(clk.Now))

	tok, err := c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	clk.Advance(59 * time.Minute)
	tok, err = c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, 1, acq.calls)

	clk.Advance(time.Minute)
	acq.expiry = clk.t.Add(time.Hour)
	tok, err = c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
	assert.Equal(t, 2, acq.calls)
}

func TestGetForceRefreshes(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	acq := &acquirer{expiry: clk.t.Add(time.Hour)}
	c := New(acq.acquire, WithClock(clk.Now))

	_, err := c.Get(ctx, false)
	require.NoError(t, err)
	tok, err := c.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}

func TestGetFallbackExpiry(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	acq := &acquirer{}
	c := New(acq.acquire, WithClock(clk.Now))

	_, err := c.Get(ctx, false)
	require.NoError(t, err)
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, clk.t.Add(DefaultTTL), cur.Expiry)

	clk.Advance(DefaultTTL - time.Second)
	_, err = c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, acq.calls)
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	acq := &acquirer{expiry: time.Now().Add(time.Hour)}
	c := New(acq.acquire)

	_, err := c.Get(ctx, false)
	require.NoError(t, err)
	c.Invalidate()
	_, ok := c.Current()
	assert.False(t, ok)

	tok, err := c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}

func TestAcquireErrorLeavesCacheEmpty(t *testing.T) {
	ctx := context.Background()
	upstream := gerr.NewUpstreamError("CJ auth", 500, "boom")
	acq := &acquirer{err: upstream}
	c := New(acq.acquire)

	_, err := c.Get(ctx, false)
	require.Error(t, err)
	assert.Equal(t, 500, gerr.StatusCode(err))
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestCooldownRefusesSecondAcquisition(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := ratelimit.NewLimiter(300*time.Second, 1).WithClock(clk.Now)
	acq := &acquirer{expiry: clk.t.Add(time.Hour)}
	c := New(acq.acquire, WithClock(clk.Now), WithCooldown("CJ", "me@example.com", limiter))

	_, err := c.Get(ctx, false)
	require.NoError(t, err)

	clk.Advance(10 * time.Second)
	_, err = c.Get(ctx, true)
	var rl *gerr.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "CJ", rl.Source)
	assert.Equal(t, 290*time.Second, rl.RetryAfter)
	assert.Equal(t, 1, acq.calls)

	// the cached token is still served without touching the limiter
	tok, err := c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
}

func TestConcurrentGetAcquiresOnce(t *testing.T) {
	ctx := context.Background()
	var mu sync.Mutex
	calls := 0
	c := New(func(context.Context) (Token, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return Token{Value: "shared", Expiry: time.Now().Add(time.Hour)}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := c.Get(ctx, false)
			assert.NoError(t, err)
			assert.Equal(t, "shared", tok)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}
