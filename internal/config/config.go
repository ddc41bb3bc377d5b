// Package config loads emlgen settings and message definitions from YAML with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "EMLGEN_LOG_LEVEL"

// ErrBadLogLevel is returned for a log level slog does not know.
var ErrBadLogLevel = errors.New("unknown log level")

// Config is the complete emlgen configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Message Message       `yaml:"message"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load returns the defaults with environment variables applied.
func Load() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg
}

// LoadFromFile reads a YAML file over the defaults, then applies environment
// variables, which always win.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse is LoadFromFile for YAML already in memory.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvVars()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Logging.Level = "info"
}

func (c *Config) applyEnvVars() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// SlogLevel converts the configured level name into a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, c.Logging.Level)
	}
	return lvl, nil
}
