package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds a leveled logger writing to w.
func newLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// fileLogger opens path for appending and logs into it.
// An empty path discards everything; the alt screen owns the terminal.
func fileLogger(path, prefix, level string) (*log.Logger, func(), error) {
	if path == "" {
		logger, err := newLogger(io.Discard, prefix, level)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, prefix, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}
