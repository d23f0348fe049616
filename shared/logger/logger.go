package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

func init() {
	// Safe defaults for tests; main calls Initialize with the configured values.
	Initialize("info", false)
}

// Initialize sets up the global logger on stdout.
func Initialize(level string, useJSON bool) {
	InitializeWriter(os.Stdout, level, useJSON)
}

// InitializeWriter sets up the global logger with the given output, level and format.
func InitializeWriter(w io.Writer, level string, useJSON bool) {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}

	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Log = slog.New(handler).With("service", "forum-api")
	slog.SetDefault(Log)
}

// ParseLevel converts a config string to slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
