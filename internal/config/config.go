// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "HEALTHTRACK_"

// Config holds all application configuration
type Config struct {
	Theme     string
	SeedPath  string // empty means the built-in sample data
	LogFile   string // empty discards logs; the TUI owns the terminal
	LogLevel  string
	LogFormat string
	NoColor   bool
}

var (
	themes     = []string{"classic", "neon", "mono"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Load reads .env (when present) then the environment and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Theme:     strings.ToLower(getEnvWithDefault(envPrefix+"THEME", "classic")),
		SeedPath:  os.Getenv(envPrefix + "SEED"),
		LogFile:   os.Getenv(envPrefix + "LOG_FILE"),
		LogLevel:  strings.ToLower(getEnvWithDefault(envPrefix+"LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnvWithDefault(envPrefix+"LOG_FORMAT", "text")),
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated settings. Call it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := oneOf("THEME", c.Theme, themes); err != nil {
		return err
	}
	if err := oneOf("LOG_LEVEL", c.LogLevel, logLevels); err != nil {
		return err
	}
	return oneOf("LOG_FORMAT", c.LogFormat, logFormats)
}

func oneOf(name, v string, allowed []string) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return fmt.Errorf("invalid %s%s %q: must be one of %s", envPrefix, name, v, strings.Join(allowed, ", "))
}

func getEnvWithDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
