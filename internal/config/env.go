package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/zhubert/aegis/internal/logger"
)

// DefaultAccessCode is the demo's shared secret when AEGIS_ACCESS_CODE is unset.
const DefaultAccessCode = "Kunzaw5109"

// Environment variable names.
const (
	EnvAPIKey     = "OPENAI_API_KEY"
	EnvBaseURL    = "OPENAI_BASE_URL"
	EnvAccessCode = "AEGIS_ACCESS_CODE"
)

// Secrets are never written to config.json.
type Secrets struct {
	APIKey     string
	BaseURL    string
	AccessCode string
}

// LoadSecrets loads the given dotenv files (".env" when none are given)
// without overriding variables already set, then reads the secrets from the
// environment. Missing dotenv files are not an error.
func LoadSecrets(files ...string) Secrets {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to load %s: %v", f, err)
		}
	}

	s := Secrets{
		APIKey:     os.Getenv(EnvAPIKey),
		BaseURL:    os.Getenv(EnvBaseURL),
		AccessCode: os.Getenv(EnvAccessCode),
	}
	if s.AccessCode == "" {
		s.AccessCode = DefaultAccessCode
	}
	return s
}

// ResolveBaseURL prefers the environment override over the config file.
func (s Secrets) ResolveBaseURL(cfg *Config) string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return cfg.GetBaseURL()
}
