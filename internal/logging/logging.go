// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options select where and how logs are written.
type Options struct {
	File   string // empty discards every record
	Level  string
	Format string // text | json
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger for w.
func New(w io.Writer, opts Options) *slog.Logger {
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	if strings.EqualFold(opts.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, ho))
	}
	return slog.New(slog.NewTextHandler(w, ho))
}

// Setup installs the default logger and returns a closer for the log file.
// Without a file, records are dropped: stdout and stderr belong to the dashboard.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(opts.File) == "" {
		l := slog.New(slog.DiscardHandler)
		slog.SetDefault(l)
		return l, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", opts.File, err)
	}
	l := New(f, opts).With("app", "healthtrack")
	slog.SetDefault(l)
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
