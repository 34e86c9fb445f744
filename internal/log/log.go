// Package log is the structured logger used by the vigenere command.
package log

import (
	"context"
	"os"

	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for structured logging.
// Implementations are safe for concurrent use.
type Logger interface {
	Debugf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	// WithFields returns a context whose logger adds the given key/value pairs.
	WithFields(ctx context.Context, keysAndValues ...any) context.Context
	Sync() error
}

// ZapConfig holds configuration for the Zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// Init initializes and returns a new Logger writing to stderr.
func Init(cfg ZapConfig) Logger {
	return newLogger(cfg, zapcore.AddSync(os.Stderr))
}
