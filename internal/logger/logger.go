package logger

import (
	"log/slog"
	"os"
)

// Init configures the process-wide slog logger. Level is Info unless
// DEBUG=true is set in the environment.
func Init() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// With returns a logger tagged with the given component name.
func With(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
