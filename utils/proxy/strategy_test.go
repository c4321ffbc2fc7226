package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStrategy(t *testing.T) {
	tests := []struct {
		name        string
		enabled     string
		url         string
		wantEnabled bool
		wantBase    string
	}{
		{"disabled", "false", "http://relay:8080", false, ""},
		{"unset", "", "http://relay:8080", false, ""},
		{"enabled", "true", "http://relay:8080", true, "http://relay:8080"},
		{"enabled without url", "true", "", false, ""},
		{"trailing slash trimmed", "true", "http://relay:8080/", true, "http://relay:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FEED_PROXY_ENABLED", tt.enabled)
			t.Setenv("FEED_PROXY_URL", tt.url)

			s := GetStrategy()
			assert.Equal(t, tt.wantEnabled, s.IsEnabled())
			assert.Equal(t, tt.wantBase, s.BaseURL)
		})
	}
}

func TestStrategy_BuildURL(t *testing.T) {
	s := &Strategy{BaseURL: "http://relay:8080", Enabled: true}
	assert.Equal(t,
		"http://relay:8080/fetch?url=https%3A%2F%2Fexample.com%2Ffeed.xml%3Fa%3D1",
		s.BuildURL("https://example.com/feed.xml?a=1"))

	disabled := &Strategy{}
	assert.Equal(t, "https://example.com/feed.xml", disabled.BuildURL("https://example.com/feed.xml"))
}

func TestStrategy_NilIsDisabled(t *testing.T) {
	var s *Strategy
	assert.False(t, s.IsEnabled())
}
