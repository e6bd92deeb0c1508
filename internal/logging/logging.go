// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options selects where diagnostics go.
type Options struct {
	Level slog.Level

	// File is appended to when set. Otherwise Stderr is used.
	File string

	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// New returns a text logger and a close func for its destination.
func New(opts Options) (*slog.Logger, func() error, error) {
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	closer := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level})
	return slog.New(handler), closer, nil
}
