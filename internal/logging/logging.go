package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the package-level default slog logger on stderr.
// When debugOnStderr is true, uses JSONHandler so operational records stay
// distinguishable from plain debug lines sharing the stream.
// Otherwise uses TextHandler for human readability.
func Init(debugOnStderr bool, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, debugOnStderr, level)))
}

// NewHandler returns the handler Init installs, writing to w.
func NewHandler(w io.Writer, structured bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if structured {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
