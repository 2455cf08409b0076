package gerr

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewUpstreamErrorTruncatesBody(t *testing.T) {
	body := strings.Repeat("x", MaxBodyLen+50)
	err := NewUpstreamError("Shopify", 502, body)
	assert.Len(t, err.Body, MaxBodyLen)
	assert.Equal(t, 502, err.StatusCode)
	assert.True(t, strings.HasPrefix(err.Error(), "Shopify 502: "))
}

func TestNewUpstreamErrorKeepsRunesWhole(t *testing.T) {
	// "€" is three bytes, so byte MaxBodyLen falls inside the second one
	body := strings.Repeat("x", MaxBodyLen-4) + "€€€"
	err := NewUpstreamError("CJ list", 500, body)
	assert.True(t, utf8.ValidString(err.Body))
	assert.Equal(t, strings.Repeat("x", MaxBodyLen-4)+"€", err.Body)
	assert.LessOrEqual(t, len(err.Body), MaxBodyLen)
}

func TestCredentialErrorMessage(t *testing.T) {
	err := &CredentialError{Source: "Facebook", Missing: []string{"token", "ad account"}}
	assert.Equal(t, "missing Facebook credentials (token/ad account)", err.Error())
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetch costs: %w", &RateLimitError{Source: "CJ", RetryAfter: 90 * time.Second})
	assert.True(t, IsRateLimited(wrapped))
	assert.False(t, IsCredential(wrapped))
	assert.Equal(t, 0, StatusCode(wrapped))

	wrapped = fmt.Errorf("fetch orders: %w", NewUpstreamError("Shopify", 401, "unauthorized"))
	assert.Equal(t, 401, StatusCode(wrapped))

	wrapped = fmt.Errorf("fetch spend: %w", &CredentialError{Source: "Facebook", Missing: []string{"token"}})
	assert.True(t, IsCredential(wrapped))
}
