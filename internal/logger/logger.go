package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type implLogger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
}

// New creates a Logger writing to stdout at the given level.
// format is "console" or "json"; anything else falls back to console.
func New(level, format string) Logger {
	return NewFromZap(NewZap(level, format))
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(z *zap.Logger) Logger {
	return &implLogger{
		zap:   z,
		sugar: z.Sugar(),
	}
}

// NewZap builds the underlying zap logger. The HTTP middleware logs through it
// directly with structured fields.
func NewZap(level, format string) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if strings.ToLower(format) == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lvl)
	return zap.New(core)
}

func (l *implLogger) shouldLog(level string) bool {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return true
	}
	return l.zap.Core().Enabled(lvl)
}

func (l *implLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFrom(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.with(ctx).Errorf(msg, args...)
}
