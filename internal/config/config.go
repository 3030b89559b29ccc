package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds process-level settings loaded from the environment.
type Config struct {
	// HTTP server settings
	ListenAddr string

	// RSS settings
	FeedsConfigPath string
	ConnectTimeout  time.Duration
	RequestTimeout  time.Duration

	// Translation settings
	TranslateProvider string // "libre" (default) or "gemini"
	TranslateURL      string
	TranslateAPIKey   string
	TranslateTimeout  time.Duration
	TranslateRetries  int
	MaxTranslatePerDay int // 0 = unlimited

	// Gemini settings (only used when TranslateProvider is "gemini")
	GeminiAPIKey string

	// Store settings
	DatabasePath string

	// Auth settings
	JWTSecret string

	// App settings
	Debug bool
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:         getEnvOrDefault("LISTEN_ADDR", ":3000"),
		FeedsConfigPath:    getEnvOrDefault("FEEDS_CONFIG_PATH", ""),
		ConnectTimeout:     5 * time.Second,
		RequestTimeout:     15 * time.Second,
		TranslateProvider:  getEnvOrDefault("TRANSLATE_PROVIDER", "libre"),
		TranslateURL:       getEnvOrDefault("LIBRETRANSLATE_URL", "https://libretranslate.com/translate"),
		TranslateAPIKey:    os.Getenv("TRANSLATE_API_KEY"),
		TranslateTimeout:   15 * time.Second,
		TranslateRetries:   getEnvIntOrDefault("TRANSLATE_RETRIES", 2),
		MaxTranslatePerDay: getEnvIntOrDefault("MAX_TRANSLATE_PER_DAY", 200),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		DatabasePath:       getEnvOrDefault("DATABASE_PATH", "newsapp.db"),
		JWTSecret:          getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
	}

	if v := os.Getenv("CONNECT_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.ConnectTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks settings that would otherwise fail at first use.
func (c *Config) Validate() error {
	if c.TranslateProvider != "libre" && c.TranslateProvider != "gemini" {
		return fmt.Errorf("TRANSLATE_PROVIDER must be 'libre' or 'gemini', got %q", c.TranslateProvider)
	}
	if c.TranslateProvider == "gemini" && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when TRANSLATE_PROVIDER is 'gemini'")
	}
	return nil
}
