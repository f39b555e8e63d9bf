package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the logger built by NewLogger.
type Options struct {
	// Format is "text" (default) or "json".
	Format string
	// Level is debug, info (default), warn or error.
	Level string
	// File, when set, receives a copy of every record and is rotated by size.
	File string
	// Out defaults to os.Stdout.
	Out io.Writer
}

// New initializes a new slog logger from the environment and sets it as the
// default. LOG_FORMAT selects text or json, LOG_LEVEL the minimum level and
// LOG_FILE an optional rotated log file.
func New() {
	slog.SetDefault(NewLogger(Options{
		Format: os.Getenv("LOG_FORMAT"),
		Level:  os.Getenv("LOG_LEVEL"),
		File:   os.Getenv("LOG_FILE"),
	}))
}

// NewLogger builds a logger without touching the global default.
func NewLogger(opts Options) *slog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	level := ParseLevel(opts.Level)

	var handler slog.Handler
	switch opts.Format {
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{
			Level:     level,
			AddSource: true, // Adds source file and line number
		})
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
