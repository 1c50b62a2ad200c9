package infrastructure

import (
	"strings"

	"go.uber.org/zap"
)

// Logger wraps a sugared zap logger so call sites log with key-value
// pairs (Infow, Warnw, Errorw) without caring about the mode.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a logger for the given mode. "prod"/"production"
// selects JSON output; anything else gets the development console format.
func NewLogger(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: z.Sugar()}, nil
}

// NewNopLogger discards everything. Handy in tests.
func NewNopLogger() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Sync flushes buffered entries. Errors are ignored; stderr sinks refuse
// to sync on some platforms.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
