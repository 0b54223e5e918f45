// Package logging sets up the structured logger the demo driver passes
// around explicitly rather than through a global. The library packages
// take no logger and do not log.
package logging

import (
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger at level, writing to w. Pass
// os.Stderr and slog.LevelInfo for the demo's default.
func New(w *os.File, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
