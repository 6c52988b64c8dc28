package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Prefix is printed in front of every record
const Prefix = "pong"

// New creates a logger writing to w at the given level
func New(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          Prefix,
	})
	l.SetLevel(level)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup opens the log destination. An empty path discards everything,
// since both hosts own stdout and a terminal host also owns stderr.
// The returned closer must be closed on shutdown.
func Setup(path string, debug bool) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		return New(io.Discard, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return New(f, level), f, nil
}
