// Package tokencache holds a single short-lived bearer credential.
package tokencache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/evandalmeida/eDashboard/internal/ratelimit"
)

// DefaultTTL is used when the provider omits an explicit expiry.
const DefaultTTL = 14 * 24 * time.Hour

var errEmptyToken = errors.New("auth endpoint returned an empty token")

// Token is an opaque credential with its expiry instant.
// A zero Expiry means the provider did not report one.
type Token struct {
	Value  string
	Expiry time.Time
}

// AcquireFunc obtains a fresh token from the remote auth endpoint.
type AcquireFunc func(ctx context.Context) (Token, error)

// Cache lazily acquires a token and reuses it until expiry.
type Cache struct {
	mu      sync.Mutex
	acquire AcquireFunc
	now     func() time.Time
	token   Token

	source  string
	key     string
	limiter *ratelimit.Limiter
}

type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithCooldown admits acquisitions through limiter under key. Refused
// acquisitions fail with a RateLimitError attributed to source.
func WithCooldown(source, key string, limiter *ratelimit.Limiter) Option {
	return func(c *Cache) {
		c.source = source
		c.key = key
		c.limiter = limiter
	}
}

func New(acquire AcquireFunc, opts ...Option) *Cache {
	c := &Cache{
		acquire: acquire,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get returns the cached token while it is valid, unless force is set.
func (c *Cache) Get(ctx context.Context, force bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !force && c.token.Value != "" && now.Before(c.token.Expiry) {
		return c.token.Value, nil
	}

	if c.limiter != nil && !c.limiter.Allow(c.key) {
		return "", &gerr.RateLimitError{Source: c.source, RetryAfter: c.limiter.RetryAfter(c.key)}
	}

	t, err := c.acquire(ctx)
	if err != nil {
		return "", err
	}
	if t.Value == "" {
		return "", errEmptyToken
	}
	if t.Expiry.IsZero() {
		t.Expiry = now.Add(DefaultTTL)
	}
	c.token = t

	slog.Default().DebugContext(ctx, "access token refreshed",
		slog.String("source", c.source),
		slog.Time("expiry", t.Expiry),
		slog.Bool("forced", force),
	)
	return t.Value, nil
}

// Invalidate drops the cached token so the next Get refreshes it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = Token{}
}

// Current returns the cached token, if any.
func (c *Cache) Current() (Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.token.Value != ""
}
