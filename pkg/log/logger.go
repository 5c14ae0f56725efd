// Package log provides structured logging for lingrad training operations.
//
// The package keeps a single zerolog logger that is disabled by default, so
// importing the library never produces output. Applications opt in with
// Setup, after which optimizers log per-iteration diagnostics at debug level
// and model façades log fit/predict summaries at info level.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
)

// Setup enables library logging at the given level, writing JSON to stdout.
func Setup(level string) {
	SetupWithWriter(level, os.Stdout)
}

// SetupWithWriter enables library logging at the given level to w.
// Valid levels are "debug", "info", "warn" and "error"; anything else
// disables logging again.
func SetupWithWriter(level string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).With().Timestamp().Logger().Level(toLevel(level))
}

// SetLogger replaces the package logger. Intended for tests and for
// applications that already carry a configured zerolog.Logger.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the current package logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func toLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
