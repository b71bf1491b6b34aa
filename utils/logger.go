package utils

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger used during bootstrap. Components get
// their own named child from main.
var Logger = zap.NewNop()

// NewLogger builds a JSON ("json") or console ("console") logger at level.
func NewLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// InitLogger builds a logger and installs it as Logger.
func InitLogger(level, format string) (*zap.Logger, error) {
	l, err := NewLogger(level, format)
	if err != nil {
		return nil, err
	}
	Logger = l
	return l, nil
}
