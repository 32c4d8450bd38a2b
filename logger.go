package crcfold

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/hupe1980/crcfold/internal/feature"
)

// Logger wraps slog.Logger with crcfold-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(b Backend) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", b.String()),
	}
}

// LogSelection logs the backend chosen for this process.
func (l *Logger) LogSelection(b Backend, overridden bool) {
	cpu := CPU()
	l.Debug("crc32 backend selected",
		"backend", b.String(),
		"overridden", overridden,
		"cpu", cpu.Brand,
		"arch", cpu.Arch,
	)
}

// LogFallback logs a requested backend the CPU cannot run.
func (l *Logger) LogFallback(requested, used Backend) {
	l.Warn("crc32 backend unavailable, falling back",
		"requested", requested.String(),
		"backend", used.String(),
	)
}

var pkgLogger atomic.Pointer[Logger]

func init() {
	pkgLogger.Store(NoopLogger())
}

// SetLogger installs the logger used by the package and reports the
// process-wide backend choice to it. Passing nil disables logging, which is
// the default.
func SetLogger(l *Logger) {
	if l == nil {
		pkgLogger.Store(NoopLogger())
		return
	}
	pkgLogger.Store(l)
	l.LogSelection(feature.Active(), feature.IsOverridden())
}

func currentLogger() *Logger {
	return pkgLogger.Load()
}

