// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"
)

// Logger is the global structured logger used by the tracker.
//
// Logger is exported to allow other packages to use it for logging.
var Logger *slog.Logger

// InitLogger initializes the global Logger with a JSON handler writing to w
// and installs it as the slog default.
func InitLogger(w io.Writer, level slog.Level) {
	Logger = NewLogger(w, level)
	slog.SetDefault(Logger)
}

// NewLogger builds a JSON logger without touching global state.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
