// Package logging configures the default slog logger for the command-line
// tools. The calculation packages stay log-free; only the CLI surface
// reports scenario resolution and failures.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to a slog.Level, defaulting to Info for
// unknown input.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Setup installs a text handler on stderr at the given level as the
// default logger.
func Setup(level string) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	slog.SetDefault(slog.New(h))
}
