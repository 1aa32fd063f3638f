// Purpose: Build the process logger from global options.
// Exports: NewLogger.
// Role: Diagnostics go to stderr so stdout stays pure markup.
// Invariants: --quiet discards everything; --verbose enables debug.
package app

import (
	"io"
	"log/slog"
	"os"
)

func NewLogger(opts GlobalOptions) *slog.Logger {
	return newLogger(os.Stderr, opts)
}

func newLogger(w io.Writer, opts GlobalOptions) *slog.Logger {
	if opts.Quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func debugf(logger *slog.Logger, msg string, args ...any) {
	logger.Debug(msg, args...)
}
