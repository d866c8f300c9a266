// Package logger builds the application's structured logger.
package logger

import (
	"io"
	"log/slog"

	"github.com/sebasr/greeting-service/internal/config"
)

// New returns a logger for the given environment.
// local and dev get human readable text at debug level, staging gets JSON at
// debug level and prod gets JSON at info level.
func New(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler

	switch env {
	case config.EnvProd:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case config.EnvStaging:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(handler).With(slog.String("env", env))
}
