package logger

import (
	"log/slog"
	"os"
)

// Initialize installs the process-wide structured logger. Diagnostics go to
// stderr so they never interleave with user-facing output on stdout.
func Initialize(level slog.Level) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

func Named(name string) *slog.Logger {
	logger := slog.Default()
	if logger == nil {
		return nil
	}

	return logger.With("name", name)
}
