package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	limiter := NewHostRateLimiter(time.Millisecond)

	tests := []struct {
		name    string
		urlStr  string
		wantErr bool
	}{
		{"valid https URL", "https://example.com/feed.xml", false},
		{"valid http URL", "http://example.com/feed.xml", false},
		{"missing host", "/relative/path", true},
		{"unparseable", "http://exa mple.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := limiter.WaitForHost(context.Background(), tt.urlStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHostRateLimiter_SeparateHostsDoNotBlockEachOther(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(context.Background(), "https://a.example.com/feed"))
	require.NoError(t, limiter.WaitForHost(context.Background(), "https://b.example.com/feed"))
	assert.Less(t, time.Since(start), time.Second)
}

func TestHostRateLimiter_SameHostThrottled(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)

	require.NoError(t, limiter.WaitForHost(context.Background(), "https://a.example.com/feed"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := limiter.WaitForHost(ctx, "https://a.example.com/other")
	assert.Error(t, err)
}

func TestHostRateLimiter_ReusesLimiterPerHost(t *testing.T) {
	limiter := NewHostRateLimiter(time.Millisecond)

	first := limiter.limiterForHost("example.com")
	second := limiter.limiterForHost("example.com")
	assert.Same(t, first, second)
}
