// Package util provides common utilities including logging helpers,
// file system locations, and small numeric helpers.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is shared by every package. It discards output until InitLogging
// is called with debugging enabled.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// InitLogging points Logger at a JSON log file. With debug off and no file,
// logs are discarded so nothing reaches the terminal the TUI is drawing on.
// The returned closer releases the file.
func InitLogging(app string, debug bool, logFile string) (io.Closer, error) {
	if os.Getenv("PERSIMMON_DEBUG") == "1" {
		debug = true
	}
	if !debug && logFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return io.NopCloser(nil), nil
	}

	if logFile == "" {
		logFile = filepath.Join(StateDir(app), fmt.Sprintf("%s.log", uuid.New().String()))
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("logging initialized", "log_file", logFile)
	return f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger.Error(context, "error", err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		Logger.Error(context, "error", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
		os.Exit(1)
	}
}
