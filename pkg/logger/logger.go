// Package logger builds the slog loggers used by the localetree CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text-formatted logger writing to stderr. Verbose enables
// debug-level output.
func New(verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter creates a text-formatted logger writing to w.
func NewWithWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
