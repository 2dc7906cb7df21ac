// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rpggio/worktracker/internal/config"
)

// New returns a text logger writing to stderr, or to the capped log file when
// cfg.Path is set. Every record carries the process run_id. The returned
// close func releases the log file and is never nil.
func New(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, func() error, error) {
	writer := stderr
	closeFn := func() error { return nil }

	if cfg.Path != "" {
		fileWriter, err := newLogFileWriter(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		writer = fileWriter
		closeFn = fileWriter.Close
	}

	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}))
	return logger.With("run_id", uuid.NewString()), closeFn, nil
}

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
