// Package logging configures the process-wide slog logger. The drill TUI
// owns the terminal, so records go to a per-run file under the log dir.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rcliao/memcurve/internal/config"
)

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Setup installs a JSON slog logger writing to <cfg.Dir>/<runID>.log and
// returns it with a function that closes the file. When the file cannot be
// opened the logger writes to stderr and the error is returned alongside it.
func Setup(cfg config.LogConfig, runID string) (*slog.Logger, func() error, error) {
	level, ok := ParseLevel(cfg.Level)

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	var setupErr error

	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		setupErr = fmt.Errorf("create log dir: %w", err)
	} else {
		path := filepath.Join(cfg.Dir, runID+".log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			setupErr = fmt.Errorf("open log file: %w", err)
		} else {
			w = f
			closer = f.Close
		}
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).
		With("run", runID)
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level, "default_level", "info")
	}
	return logger, closer, setupErr
}
