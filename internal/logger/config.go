// Package logger provides slog-backed logging with Printf-style wrappers.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the logger settings read from the config file or flags.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path of the output log file. Empty or "-" means stderr.
	LogFilePath string `toml:"log_file"`
}

// Level parses the configured level string, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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

// OpenOutput opens the configured log destination. The returned closer is
// os.Stderr (never actually closed) when no file path is set.
func (c Config) OpenOutput() (io.WriteCloser, error) {
	if c.LogFilePath == "" || c.LogFilePath == "-" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(c.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", c.LogFilePath, err)
	}
	return f, nil
}
