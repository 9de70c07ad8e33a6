package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug level", "debug", "console"},
		{"info level", "info", "json"},
		{"warn level", "warn", "console"},
		{"error level", "error", "json"},
		{"invalid level", "invalid", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, tt.format)
			assert.NotNil(t, log)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info", "console")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"error always logs", "debug", "error", true},
		{"invalid config level defaults to info", "invalid", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel, "console").(*implLogger)
			assert.Equal(t, tt.shouldLog, log.shouldLog(tt.logLevel))
		})
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-1")
	log.Info(ctx, "generated %d topics", 5)
	log.Warn(context.Background(), "no request id")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "generated 5 topics", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	_, ok := entries[1].ContextMap()["request_id"]
	assert.False(t, ok)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}
