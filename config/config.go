// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
)

// Supported session stores.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Provider        string
	Model           string
	ValidatorModel  string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	SerperAPIKey    string
	SearchRPS       float64
	Stream          bool
	Store           string
	DataDir         string
	DBPath          string
	LogLevel        string
	LogFormat       string
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding the environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dataDir := getEnv("WELLCOACH_DATA_DIR", "")
	cfg := &Config{
		Provider:        strings.ToLower(getEnv("WELLCOACH_PROVIDER", ProviderOpenAI)),
		Model:           getEnv("WELLCOACH_MODEL", ""),
		ValidatorModel:  getEnv("WELLCOACH_VALIDATOR_MODEL", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		SerperAPIKey:    getEnv("SERPER_API_KEY", ""),
		SearchRPS:       getEnvFloat("WELLCOACH_SEARCH_RPS", 0),
		Stream:          getEnvBool("WELLCOACH_STREAM", false),
		Store:           strings.ToLower(getEnv("WELLCOACH_STORE", StoreFile)),
		DataDir:         dataDir,
		DBPath:          getEnv("WELLCOACH_DB_PATH", filepath.Join(dataDir, "wellcoach.db")),
		LogLevel:        getEnv("WELLCOACH_LOG_LEVEL", "warn"),
		LogFormat:       getEnv("WELLCOACH_LOG_FORMAT", "text"),
	}
	if cfg.ValidatorModel == "" {
		cfg.ValidatorModel = cfg.Model
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.Provider)
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for provider %q", c.Provider)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown WELLCOACH_PROVIDER %q", c.Provider)
	}
	switch c.Store {
	case StoreFile:
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("WELLCOACH_DB_PATH cannot be empty")
		}
	default:
		return fmt.Errorf("unknown WELLCOACH_STORE %q", c.Store)
	}
	if c.SearchRPS < 0 {
		return fmt.Errorf("WELLCOACH_SEARCH_RPS must be >= 0")
	}
	return nil
}

// SearchEnabled reports whether a search API key is configured.
func (c *Config) SearchEnabled() bool { return c.SerperAPIKey != "" }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}
