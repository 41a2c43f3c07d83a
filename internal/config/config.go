// Package config loads the wadinfo configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings wadinfo reads before applying command-line flags.
type Config struct {
	IWAD           string `yaml:"iwad"`
	Metadata       string `yaml:"metadata"`
	LevelCacheSize int    `yaml:"level_cache_size"`
	Verbose        bool   `yaml:"verbose"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		IWAD:           "doom1.wad",
		Metadata:       "doom.toml",
		LevelCacheSize: 16,
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values Open would reject.
func (c *Config) Validate() error {
	if c.IWAD == "" {
		return fmt.Errorf("config: iwad must be set")
	}
	if c.LevelCacheSize <= 0 {
		return fmt.Errorf("config: level_cache_size must be positive, got %d", c.LevelCacheSize)
	}
	return nil
}
