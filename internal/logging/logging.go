// Package logging builds the application logger used by the CLI.
package logging

import (
	"log/slog"
	"os"
)

// New creates a configured application logger. It writes to stderr so
// that rendered output on stdout stays clean.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
