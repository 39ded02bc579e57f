// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/amaumene/gomovies/internal/constants"
	apperrors "github.com/amaumene/gomovies/internal/errors"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default favorites database path
	defaultDatabasePath = "./favorites.db"
	// Default preferences database path
	defaultPrefsPath = "./prefs.db"
)

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	// Remote API access
	TMDBAPIKey string `json:"TMDB_API_KEY"`

	// Storage settings
	DatabasePath string `json:"DATABASE_PATH"`
	PrefsPath    string `json:"PREFS_PATH"`

	// Cache settings
	CacheSize int           `json:"CACHE_SIZE"`
	CacheTTL  time.Duration `json:"CACHE_TTL"`

	// HTTP settings
	Port           string        `json:"PORT"`
	RequestTimeout time.Duration `json:"REQUEST_TIMEOUT"`
}

// Load reads configuration from environment variables and an optional JSON
// file. Environment variables take precedence over file values. Returns an
// error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := &Config{
		CacheSize:      constants.DefaultCacheSize,
		CacheTTL:       time.Duration(constants.DefaultCacheTTL) * time.Hour,
		DatabasePath:   defaultDatabasePath,
		PrefsPath:      defaultPrefsPath,
		Port:           constants.DefaultPort,
		RequestTimeout: constants.TMDBRequestTimeout,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// A missing config file is fine, everything can come from env
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		c.TMDBAPIKey = key
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		c.DatabasePath = path
	}
	if path := os.Getenv("PREFS_PATH"); path != "" {
		c.PrefsPath = path
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if timeout := os.Getenv("REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.RequestTimeout = d
		}
	}
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks if the configuration is valid and fills defaults for
// missing optional fields.
func (c *Config) Validate() error {
	if c.TMDBAPIKey == "" {
		return apperrors.ErrAPIKeyMissing
	}

	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Duration(constants.DefaultCacheTTL) * time.Hour
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.TMDBRequestTimeout
	}

	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
