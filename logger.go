package dvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dvec-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithName adds a name field to the logger (useful to tell vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogGrow logs a successful buffer reallocation.
func (l *Logger) LogGrow(oldCapacity, newCapacity, size int) {
	l.Debug("vector grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"size", size,
	)
}

// LogGrowFailed logs a growth request that could not be satisfied.
func (l *Logger) LogGrowFailed(requested, maxCapacity int, err error) {
	l.Error("vector growth failed",
		"requested", requested,
		"max_capacity", maxCapacity,
		"error", err,
	)
}

// LogInvalidOperation logs a rejected call such as a self copy.
func (l *Logger) LogInvalidOperation(op string, err error) {
	l.Warn("invalid vector operation",
		"op", op,
		"error", err,
	)
}

// LogOutOfRange logs a position that missed the vector. The call is a no-op.
func (l *Logger) LogOutOfRange(op string, pos, size int) {
	l.Debug("position out of range",
		"op", op,
		"pos", pos,
		"size", size,
	)
}
