package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/aegis/internal/errors"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GetTheme() != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.GetTheme(), DefaultTheme)
	}
	if cfg.GetModel() != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.GetModel(), DefaultModel)
	}
	if cfg.GetDesktopBreakpoint() != 1024 {
		t.Errorf("DesktopBreakpoint = %d, want 1024", cfg.GetDesktopBreakpoint())
	}
	if cfg.GetCellWidth() != 8 {
		t.Errorf("CellWidth = %d, want 8", cfg.GetCellWidth())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load() should not create the file")
	}
}

func TestLoad_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"theme": "amber",
		"notifications_enabled": true,
		"model": "gpt-4o-mini",
		"reference_date": "today",
		"desktop_breakpoint_px": 800
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GetTheme() != "amber" {
		t.Errorf("Theme = %q", cfg.GetTheme())
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("NotificationsEnabled should be true")
	}
	if cfg.GetModel() != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.GetModel())
	}
	if cfg.GetDesktopBreakpoint() != 800 {
		t.Errorf("DesktopBreakpoint = %d", cfg.GetDesktopBreakpoint())
	}
	// Unset fields still get defaults.
	if cfg.GetCellWidth() != DefaultCellWidth {
		t.Errorf("CellWidth = %d", cfg.GetCellWidth())
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("Load() error = %v, want KindConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"today reference", func(c *Config) { c.ReferenceDate = "today" }, false},
		{"bad reference", func(c *Config) { c.ReferenceDate = "28/12/2025" }, true},
		{"negative breakpoint", func(c *Config) { c.DesktopBreakpointPx = -1 }, true},
		{"huge cell width", func(c *Config) { c.CellWidthPx = 500 }, true},
		{"empty model", func(c *Config) { c.Model = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New("")
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.KindInvalid) {
				t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := New(path)
	cfg.SetTheme("matrix")
	cfg.SetNotificationsEnabled(true)
	cfg.SetCatalogPath("/tmp/catalog.yaml")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.GetTheme() != "matrix" {
		t.Errorf("Theme = %q", loaded.GetTheme())
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("NotificationsEnabled not persisted")
	}
	if loaded.GetCatalogPath() != "/tmp/catalog.yaml" {
		t.Errorf("CatalogPath = %q", loaded.GetCatalogPath())
	}
	if loaded.FilePath() != path {
		t.Errorf("FilePath = %q", loaded.FilePath())
	}
}

func TestReference(t *testing.T) {
	start := time.Date(2026, 3, 9, 17, 45, 0, 0, time.Local)

	tests := []struct {
		ref  string
		want time.Time
	}{
		{DefaultReferenceDate, time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{ReferenceToday, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			cfg := New("")
			cfg.ReferenceDate = tt.ref
			if got := cfg.Reference(start); !got.Equal(tt.want) {
				t.Errorf("Reference() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadSecrets(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("OPENAI_API_KEY=from-file\nAEGIS_ACCESS_CODE=swordfish\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAccessCode, "")
	t.Setenv(EnvBaseURL, "http://localhost:9999/v1")
	os.Unsetenv(EnvAPIKey)
	os.Unsetenv(EnvAccessCode)

	s := LoadSecrets(envFile)
	if s.APIKey != "from-file" {
		t.Errorf("APIKey = %q", s.APIKey)
	}
	if s.AccessCode != "swordfish" {
		t.Errorf("AccessCode = %q", s.AccessCode)
	}
	if got := s.ResolveBaseURL(New("")); got != "http://localhost:9999/v1" {
		t.Errorf("ResolveBaseURL() = %q", got)
	}
}

func TestLoadSecrets_MissingFileUsesDefaultCode(t *testing.T) {
	t.Setenv(EnvAccessCode, "")
	os.Unsetenv(EnvAccessCode)

	s := LoadSecrets(filepath.Join(t.TempDir(), "absent.env"))
	if s.AccessCode != DefaultAccessCode {
		t.Errorf("AccessCode = %q, want default", s.AccessCode)
	}
	if got := (Secrets{}).ResolveBaseURL(New("")); got != DefaultBaseURL {
		t.Errorf("ResolveBaseURL() = %q, want config base URL", got)
	}
}
