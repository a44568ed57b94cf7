package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// parseLogLevel accepts debug, info, warn and error. Empty means info.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
}

// newLogger builds the editor logger. The terminal belongs to the editor, so
// without a log file everything is discarded. The caller closes the returned
// file, if any.
func newLogger(path, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return discardLogger(), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), f, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
