package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFeedURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips tracking parameters",
			input:    "https://example.com/feed.xml?utm_source=rss&utm_campaign=test",
			expected: "https://example.com/feed.xml",
		},
		{
			name:     "keeps functional parameters",
			input:    "https://example.com/feed?category=releases&utm_medium=x",
			expected: "https://example.com/feed?category=releases",
		},
		{
			name:     "strips fragment",
			input:    "https://example.com/feed.xml#latest",
			expected: "https://example.com/feed.xml",
		},
		{
			name:     "strips trailing slash",
			input:    "https://example.com/feed/",
			expected: "https://example.com/feed",
		},
		{
			name:     "root path keeps slash",
			input:    "https://example.com/",
			expected: "https://example.com/",
		},
		{
			name:     "already canonical untouched",
			input:    "https://example.com/feed.xml",
			expected: "https://example.com/feed.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeFeedURL(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeFeedURL_Invalid(t *testing.T) {
	_, err := NormalizeFeedURL("http://exa mple.com")
	assert.Error(t, err)
}
