// Package logger writes aegis diagnostics to a log file.
//
// The terminal belongs to the UI while aegis runs, so nothing here ever writes
// to stdout or stderr after initialization. Tail the file instead:
//
//	tail -f /tmp/aegis-debug.log
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is used when Init is never called.
const DefaultLogPath = "/tmp/aegis-debug.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	base     *slog.Logger
	path     string
	initDone bool
)

// open must be called with mu held.
func open(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", p, err)
	}
	logFile = f
	path = p
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
	base.Info("logger initialized", "path", p)
	return nil
}

// Init opens path for appending and routes all subsequent logging to it.
// Calling Init again after a successful Init is a no-op.
func Init(p string) error {
	mu.Lock()
	defer mu.Unlock()
	if initDone {
		return nil
	}
	return open(p)
}

func ensureInit() {
	if initDone {
		return
	}
	if err := open(DefaultLogPath); err != nil {
		// Mark done anyway so every call doesn't retry the open.
		initDone = true
	}
}

// SetDebug toggles debug level output.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Path returns the file currently being written, or "" before first use.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()
	if base == nil || !base.Enabled(context.Background(), level) {
		return
	}
	base.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// WithComponent returns a structured logger tagged with component.
//
//	log := logger.WithComponent("chat")
//	log.Info("stream started", "messages", n)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()
	if base == nil {
		return slog.New(slog.DiscardHandler)
	}
	return base.With(slog.String("component", component))
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset returns the package to its pristine state. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	path = ""
	initDone = false
	levelVar.Set(slog.LevelInfo)
}
