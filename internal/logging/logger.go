package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the diagnostic logger. Verbose mode lowers the level to
// Debug so per-entry scan and delete failures become visible.
func New(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Measure returns a stop function that logs the elapsed time when called.
func Measure(logger *zap.Logger, label string) func() {
	start := time.Now()
	return func() {
		logger.Debug(label, zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	}
}
