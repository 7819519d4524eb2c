package logging

import (
	"io"
	"log/slog"
)

// Setup configures the default structured logger. Diagnostics go to w so that
// they never mix with progress output on stdout.
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
