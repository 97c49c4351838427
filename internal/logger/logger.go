package logger

import (
	"log/slog"
	"os"
)

// New creates the slog.Logger used across the service. Output is JSON on
// stdout at info level, tagged with the service name.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "pizza-petes"))
}
