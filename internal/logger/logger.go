// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

// Package logger writes structured logs to a file. The TUI owns stdout, so
// nothing is ever written to the terminal.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultLogPath is used when Init is never called
var DefaultLogPath = filepath.Join(os.TempDir(), "reqdesk-debug.log")

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	path     string
)

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// SetLevel changes the minimum level at runtime
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetDebug toggles debug level logging
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

// Init opens the log file at p, creating parent directories as needed.
// Calling it again switches to the new file.
func Init(p string) error {
	mu.Lock()
	defer mu.Unlock()

	if p == "" {
		p = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", p, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	path = p
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", p)
	return nil
}

// Path returns the active log file path, empty before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

func current() *slog.Logger {
	if base == nil {
		// Logging before Init is discarded rather than written to the terminal.
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return base
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	l := current()
	mu.Unlock()

	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a formatted debug message
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a formatted info message
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a formatted warning
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a formatted error
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// ComponentLogger returns a logger with the component attribute attached.
//
//	log := logger.ComponentLogger("popups")
//	log.Debug("focus", "id", id)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current().With(slog.String("component", component))
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	path = ""
}
