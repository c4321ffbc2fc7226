package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	log := InitLogger()
	require.NotNil(t, log)
	assert.Same(t, log, Logger)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestInitLoggerWith(t *testing.T) {
	log := InitLoggerWith("debug", "text")
	require.NotNil(t, log)
	assert.Same(t, log, Logger)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestSafeWrappers_NilLogger(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	assert.NotPanics(t, func() {
		SafeInfo("info", "k", "v")
		SafeWarn("warn")
		SafeError("error", "err", assert.AnError)
		SafeInfoContext(context.Background(), "info")
		SafeWarnContext(context.Background(), "warn")
		SafeErrorContext(context.Background(), "error")
	})
}

func TestContextLogger_WithContext(t *testing.T) {
	InitLogger()
	cl := NewContextLogger(Logger)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, OperationKey, "ingest")

	assert.NotPanics(t, func() {
		cl.LogDuration(ctx, "ingest", 0)
		cl.LogError(ctx, "ingest", assert.AnError)
	})
}
