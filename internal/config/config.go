// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"steelcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Generator contains dataset generation defaults
	Generator GeneratorConfig `json:"generator"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Store contains snapshot store configuration
	Store StoreConfig `json:"store"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// GeneratorConfig contains dataset generation defaults
type GeneratorConfig struct {
	// StartYear is the default first year to generate
	StartYear int `json:"start_year"`

	// EndYear is the default last year to generate
	EndYear int `json:"end_year"`

	// Seed is the default RNG seed; zero draws a fresh seed per run
	Seed int64 `json:"seed"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowPoints includes chart points in CLI output
	ShowPoints bool `json:"show_points"`
}

// StoreConfig contains snapshot store settings
type StoreConfig struct {
	// DSN is the Postgres connection string; empty disables the store
	DSN string `json:"dsn,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Generator: GeneratorConfig{
			StartYear: 2015,
			EndYear:   2035,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowPoints:    false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
