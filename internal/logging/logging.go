// internal/logging/logging.go

// Package logging configures the process-wide slog logger. Messages go
// to stderr; when the configuration names a log file they are written
// there as well.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup installs the default logger. The returned closer releases the
// log file, if any, and is safe to call when no file was opened.
func Setup(logFile string, verbose bool) (io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	var closer io.Closer

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %v", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %v", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closer = f
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	if closer == nil {
		closer = nopCloser{}
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
