package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	p := filepath.Join(t.TempDir(), "aegis.log")
	if err := Init(p); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(Reset)
	return p
}

func readLog(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestInit_WritesHeader(t *testing.T) {
	p := setupTestLogger(t)
	if Path() != p {
		t.Errorf("Path() = %q, want %q", Path(), p)
	}
	if !strings.Contains(readLog(t, p), "logger initialized") {
		t.Error("expected init line in log")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	p := setupTestLogger(t)
	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if Path() != p {
		t.Errorf("Path() changed to %q", Path())
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("expected error for unopenable path")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		log     func(string, ...any)
		msg     string
		visible bool
	}{
		{"info shown by default", false, Info, "info-line", true},
		{"debug hidden by default", false, Debug, "debug-line", false},
		{"debug shown when enabled", true, Debug, "debug-on-line", true},
		{"warn shown", false, Warn, "warn-line", true},
		{"error shown", false, Error, "error-line", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := setupTestLogger(t)
			SetDebug(tt.debug)
			tt.log("%s %d", tt.msg, 7)
			got := strings.Contains(readLog(t, p), tt.msg+" 7")
			if got != tt.visible {
				t.Errorf("line visible = %v, want %v", got, tt.visible)
			}
		})
	}
}

func TestWithComponent(t *testing.T) {
	p := setupTestLogger(t)
	WithComponent("chat").Info("stream started", "messages", 3)
	out := readLog(t, p)
	if !strings.Contains(out, "component=chat") {
		t.Errorf("missing component attribute in %q", out)
	}
	if !strings.Contains(out, "messages=3") {
		t.Errorf("missing messages attribute in %q", out)
	}
}

func TestClose_ThenLogDoesNotPanic(t *testing.T) {
	setupTestLogger(t)
	Close()
	Info("after close")
	WithComponent("x").Info("after close")
}
