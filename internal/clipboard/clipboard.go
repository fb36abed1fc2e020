// Package clipboard copies text to and from the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/aegis/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// write and read are swapped out by tests so they never touch the real
	// clipboard.
	write = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	read  = func() []byte { return clipboard.Read(clipboard.FmtText) }
	setup = clipboard.Init
)

// Init initializes the clipboard. Safe to call more than once.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}
	if err := setup(); err != nil {
		logger.Warn("clipboard: init failed: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

// WriteText replaces the clipboard contents with s.
func WriteText(s string) error {
	if err := Init(); err != nil {
		return err
	}
	write([]byte(s))
	logger.Debug("clipboard: wrote %d bytes", len(s))
	return nil
}

// ReadText returns the clipboard text, or "" when it holds none.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(read()), nil
}

// SetBackend replaces the system clipboard with w and r. Used by tests in
// other packages.
func SetBackend(w func([]byte), r func() []byte) {
	mu.Lock()
	defer mu.Unlock()
	write, read = w, r
	setup = func() error { return nil }
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	mu.Lock()
	defer mu.Unlock()
	write = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	read = func() []byte { return clipboard.Read(clipboard.FmtText) }
	setup = clipboard.Init
	initialized = false
}
