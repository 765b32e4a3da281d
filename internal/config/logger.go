package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger - JSON logger at the configured level; unknown levels fall back to info.
func NewLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
