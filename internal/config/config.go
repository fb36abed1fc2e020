package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/zhubert/aegis/internal/errors"
)

// Defaults applied to any field left empty in config.json.
const (
	DefaultTheme        = "cyber-violet"
	DefaultModel        = "openai/gpt-5-mini"
	DefaultBaseURL      = "https://ai-gateway.vercel.sh/v1"
	DefaultSystemPrompt = "You are a helpful AI cloud drive assistant. You can help users manage, analyze, and understand their files. You have a professional yet high-tech personality."
	// DefaultReferenceDate pins "now" for the Recent filter so the demo
	// catalog always has recent entries.
	DefaultReferenceDate     = "2025-12-28"
	DefaultDesktopBreakpoint = 1024
	DefaultCellWidth         = 8

	// ReferenceToday anchors the Recent filter to the day the session starts.
	ReferenceToday = "today"

	dateLayout = "2006-01-02"
)

// Config holds the persisted application configuration.
type Config struct {
	Theme                string `json:"theme,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"`

	Model        string `json:"model,omitempty"`
	BaseURL      string `json:"base_url,omitempty"`
	SystemPrompt string `json:"system_prompt,omitempty"`

	CatalogPath   string `json:"catalog_path,omitempty"`
	ReferenceDate string `json:"reference_date,omitempty"`

	// Terminal cells are converted to logical pixels (cells * CellWidthPx)
	// before being compared against DesktopBreakpointPx.
	DesktopBreakpointPx int `json:"desktop_breakpoint_px,omitempty"`
	CellWidthPx         int `json:"cell_width_px,omitempty"`

	mu       sync.RWMutex
	filePath string
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aegis"), nil
}

// DefaultPath returns ~/.aegis/config.json.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with every default applied, bound to path.
func New(path string) *Config {
	c := &Config{filePath: path}
	c.applyDefaults()
	return c
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults; the file is only created by Save.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.aegis/config.json", err)
		}
		path = p
	}

	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults is only called before the config is shared.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = DefaultSystemPrompt
	}
	if c.ReferenceDate == "" {
		c.ReferenceDate = DefaultReferenceDate
	}
	if c.DesktopBreakpointPx == 0 {
		c.DesktopBreakpointPx = DefaultDesktopBreakpoint
	}
	if c.CellWidthPx == 0 {
		c.CellWidthPx = DefaultCellWidth
	}
}

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := validation.ValidateStruct(c,
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.ReferenceDate, validation.Required, validation.By(validReferenceDate)),
		validation.Field(&c.DesktopBreakpointPx, validation.Min(1), validation.Max(100000)),
		validation.Field(&c.CellWidthPx, validation.Min(1), validation.Max(64)),
	)
	if err != nil {
		return errors.ConfigInvalid(err)
	}
	return nil
}

func validReferenceDate(value any) error {
	s, _ := value.(string)
	if s == ReferenceToday {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return validation.NewError("validation_reference_date", "must be YYYY-MM-DD or \"today\"")
	}
	return nil
}

// Save writes the config to its file, creating the directory if needed.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath redirects Save. Used by tests.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// Reference returns the anchored "now" used by the Recent filter. A fixed
// date is midnight UTC of that day; "today" is midnight UTC of sessionStart's
// calendar day.
func (c *Config) Reference(sessionStart time.Time) time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ReferenceDate == ReferenceToday {
		y, m, d := sessionStart.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	t, err := time.Parse(dateLayout, c.ReferenceDate)
	if err != nil {
		t, _ = time.Parse(dateLayout, DefaultReferenceDate)
	}
	return t
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetModel returns the chat model name.
func (c *Config) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Model
}

// SetModel sets the chat model name.
func (c *Config) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Model = model
}

// GetBaseURL returns the OpenAI-compatible endpoint.
func (c *Config) GetBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BaseURL
}

// GetSystemPrompt returns the fixed system prompt sent with every request.
func (c *Config) GetSystemPrompt() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SystemPrompt
}

// GetCatalogPath returns the YAML catalog override, or "" for the built-in one.
func (c *Config) GetCatalogPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogPath
}

// SetCatalogPath sets the YAML catalog override.
func (c *Config) SetCatalogPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CatalogPath = path
}

// GetDesktopBreakpoint returns the Desktop threshold in logical px.
func (c *Config) GetDesktopBreakpoint() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DesktopBreakpointPx
}

// GetCellWidth returns logical px per terminal column.
func (c *Config) GetCellWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CellWidthPx
}
