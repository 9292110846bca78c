package dependable

import (
	"log/slog"

	"github.com/AnatoleLucet/dependable/internal"
	"github.com/go-logr/logr"
)

// SetLogger sets where debug logs go. Nothing is logged by default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// SetLogrLogger is SetLogger for logr users.
func SetLogrLogger(l logr.Logger) {
	internal.SetLogger(slog.New(logr.ToSlogHandler(l)))
}
