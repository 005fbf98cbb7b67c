package common

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// NewLogger writes JSON logs to f, or text logs when f is a terminal.
func NewLogger(f *os.File, quiet, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	if quiet {
		logLevel = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(f, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}
