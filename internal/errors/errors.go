package gerr

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxBodyLen caps the upstream response body carried by UpstreamError.
const MaxBodyLen = 400

var (
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidBasis = errors.New("invalid revenue basis")
)

// CredentialError reports required configuration missing for a source.
type CredentialError struct {
	Source  string
	Missing []string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("missing %s credentials (%s)", e.Source, strings.Join(e.Missing, "/"))
}

// UpstreamError is a non-success HTTP response from a remote API.
type UpstreamError struct {
	Source     string
	StatusCode int
	Body       string
}

// NewUpstreamError truncates body to at most MaxBodyLen bytes without splitting a rune.
func NewUpstreamError(source string, status int, body string) *UpstreamError {
	if len(body) > MaxBodyLen {
		cut := MaxBodyLen
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return &UpstreamError{Source: source, StatusCode: status, Body: body}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Source, e.StatusCode, e.Body)
}

// RateLimitError is returned when a call was refused locally to respect an upstream cooldown.
type RateLimitError struct {
	Source     string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited, retry in %s", e.Source, e.RetryAfter.Round(time.Second))
}

// PartialResultWarning annotates an otherwise successful result. It is never returned as an error.
type PartialResultWarning struct {
	Source string
	Reason string
}

func (w PartialResultWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Source, w.Reason)
}

// IsCredential reports whether err wraps a CredentialError.
func IsCredential(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

// IsRateLimited reports whether err wraps a RateLimitError.
func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// StatusCode returns the upstream HTTP status wrapped in err, or 0.
func StatusCode(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}
