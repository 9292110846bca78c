package internal

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger installs the engine logger, nil discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	logger.Store(l)
}
