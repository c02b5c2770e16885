// Package logger builds the application's slog logger. Components receive the
// logger by injection and tag themselves via logger.With("component", ...).
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Options configures logger construction.
type Options struct {
	Service   string
	Level     string
	AddSource bool
}

// New creates a JSON slog logger writing to stdout and installs it as the
// process default.
func New(opts Options) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: opts.AddSource,
	})

	base := slog.New(h).With("service", opts.Service)
	slog.SetDefault(base)
	return base
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
