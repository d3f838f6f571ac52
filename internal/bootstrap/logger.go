package bootstrap

import (
	"log/slog"
	"os"

	"github.com/ashatilov/camdict/internal/config"
)

// NewLogger builds the process-wide logger from the log configuration.
// The debug flag forces level debug regardless of the configured level.
func NewLogger(cfg config.LogConfig, debugMode bool) *slog.Logger {
	level := parseLevel(cfg.Level)
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
