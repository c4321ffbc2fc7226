package utils

import (
	"testing"

	"intmon/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExternalURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"public https", "https://example.com/feed.xml", false},
		{"public http", "http://example.com/feed.xml", false},
		{"relative url", "/feed.xml", true},
		{"ftp scheme", "ftp://example.com/feed.xml", true},
		{"localhost", "http://localhost:8080/feed.xml", true},
		{"localhost subdomain", "http://internal.localhost/feed.xml", true},
		{"loopback ip", "http://127.0.0.1:9999/latest/meta-data", true},
		{"private ip", "http://192.168.1.1/feed.xml", true},
		{"ten-dot private ip", "http://10.0.0.5/feed.xml", true},
		{"link local ip", "http://169.254.169.254/latest/meta-data", true},
		{"unspecified ip", "http://0.0.0.0/feed.xml", true},
		{"ipv6 loopback", "http://[::1]/feed.xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExternalURL(tt.url)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "url", validationErr.Field)
		})
	}
}
