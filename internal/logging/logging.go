// Package logging configures the process-wide slog logger.
//
// Diagnostics always go to stderr so that stdout stays reserved for the
// bump report. The level comes from the --log-level flag, which also reads
// the LOG_LEVEL environment variable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Unknown names map to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level. Debug loggers
// include the source location.
func New(w io.Writer, name, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(h).With("module", name, "version", version)
}

// SetDefault installs a stderr logger as the slog default.
func SetDefault(name, version, level string) {
	slog.SetDefault(New(os.Stderr, name, version, level))
}
