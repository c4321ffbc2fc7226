// Package proxy configures the relay used for feed retrieval. Many feed
// hosts reject direct cross-origin clients, so fetches go through a
// configured relay first and fall back to a direct request.
package proxy

import (
	"net/url"
	"os"
	"strings"
)

// Strategy describes whether and how feed fetches are relayed.
type Strategy struct {
	// BaseURL is the base URL of the relay server.
	BaseURL string
	// Enabled indicates whether the relay strategy is active.
	Enabled bool
}

// GetStrategy reads the relay configuration from the environment.
//
//   - FEED_PROXY_ENABLED: "true" to route fetches through the relay first
//   - FEED_PROXY_URL: relay base URL (required when enabled)
func GetStrategy() *Strategy {
	if os.Getenv("FEED_PROXY_ENABLED") != "true" {
		return &Strategy{}
	}

	baseURL := strings.TrimRight(os.Getenv("FEED_PROXY_URL"), "/")
	if baseURL == "" {
		return &Strategy{}
	}

	return &Strategy{
		BaseURL: baseURL,
		Enabled: true,
	}
}

// IsEnabled returns true if the strategy is enabled and ready for use.
// Returns false for nil strategies.
func (s *Strategy) IsEnabled() bool {
	if s == nil {
		return false
	}
	return s.Enabled
}

// BuildURL converts a target URL into its relayed form:
// <base>/fetch?url=<escaped target>.
func (s *Strategy) BuildURL(target string) string {
	if !s.IsEnabled() {
		return target
	}
	return s.BaseURL + "/fetch?url=" + url.QueryEscape(target)
}
