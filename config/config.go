// Package config provides configuration loading and management for doikit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete doikit configuration
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Resolver ResolverConfig `yaml:"resolver"`
	Log      LogConfig      `yaml:"log"`
}

// RegistryConfig configures the EZID registry connection
type RegistryConfig struct {
	// BaseURL is the registry API endpoint (default: https://ezid.cdlib.org)
	BaseURL string `yaml:"base_url"`
	// Username is the registry account name
	Username string `yaml:"username"`
	// Password is the registry account password
	Password string `yaml:"password"`
	// Shoulder is the prefix new identifiers are minted under
	Shoulder string `yaml:"shoulder"`
	// Timeout is the maximum time to wait for registry responses
	Timeout time.Duration `yaml:"timeout"`
}

// ResolverConfig configures the public DOI resolver
type ResolverConfig struct {
	// BaseURL is the resolver endpoint (default: http://dx.doi.org)
	BaseURL string `yaml:"base_url"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			BaseURL: "https://ezid.cdlib.org",
			Timeout: 30 * time.Second,
		},
		Resolver: ResolverConfig{
			BaseURL: "http://dx.doi.org",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Registry.BaseURL == "" {
		return fmt.Errorf("registry.base_url is required")
	}
	if c.Registry.Timeout < 0 {
		return fmt.Errorf("registry.timeout must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Registry
	if other.Registry.BaseURL != "" {
		c.Registry.BaseURL = other.Registry.BaseURL
	}
	if other.Registry.Username != "" {
		c.Registry.Username = other.Registry.Username
	}
	if other.Registry.Password != "" {
		c.Registry.Password = other.Registry.Password
	}
	if other.Registry.Shoulder != "" {
		c.Registry.Shoulder = other.Registry.Shoulder
	}
	if other.Registry.Timeout != 0 {
		c.Registry.Timeout = other.Registry.Timeout
	}

	// Resolver
	if other.Resolver.BaseURL != "" {
		c.Resolver.BaseURL = other.Resolver.BaseURL
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Config may carry registry credentials, keep it user-readable only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
