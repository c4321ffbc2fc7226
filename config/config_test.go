package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ClientTimeout)
	assert.Equal(t, int64(5242880), cfg.HTTP.MaxResponseBytes)
	assert.Equal(t, time.Second, cfg.RateLimit.HostInterval)
	assert.Equal(t, 15*time.Minute, cfg.Ingest.RefreshInterval)
	assert.Equal(t, 8, cfg.Ingest.BatchConcurrency)
	assert.Equal(t, 200, cfg.Ingest.SnippetLength)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("INGEST_REFRESH_INTERVAL", "5m")
	t.Setenv("INGEST_BATCH_CONCURRENCY", "4")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Ingest.RefreshInterval)
	assert.Equal(t, 4, cfg.Ingest.BatchConcurrency)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "port out of range",
			key:   "SERVER_PORT",
			value: "70000",
		},
		{
			name:  "zero batch concurrency",
			key:   "INGEST_BATCH_CONCURRENCY",
			value: "0",
		},
		{
			name:  "negative refresh interval",
			key:   "INGEST_REFRESH_INTERVAL",
			value: "-1m",
		},
		{
			name:  "unknown log level",
			key:   "LOG_LEVEL",
			value: "verbose",
		},
		{
			name:  "unknown log format",
			key:   "LOG_FORMAT",
			value: "xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := NewConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestNewConfig_MalformedEnvValue(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	cfg, err := NewConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
