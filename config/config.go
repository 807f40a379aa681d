// Package config loads the YAML file that sets kdistinct CLI defaults.
//
// Example file:
//
//	counter: table
//	min_value: -100000
//	max_value: 100000
//	truncate32: false
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kdistinct/window"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds CLI defaults. Flags override individual fields.
type Config struct {
	Counter    string `yaml:"counter"`
	MinValue   int    `yaml:"min_value"`
	MaxValue   int    `yaml:"max_value"`
	Truncate32 bool   `yaml:"truncate32"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Counter:  window.MapCounter.String(),
		MinValue: window.DefaultMinValue,
		MaxValue: window.DefaultMaxValue,
		LogLevel: "warn",
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults. Keys absent from the file keep their default values.
// Values are not checked here: callers apply their overrides and then
// call Validate once.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks every field without building anything. The value range
// is only checked for the table counter, the one kind that reads it.
func (c *Config) Validate() error {
	kind, err := window.ParseCounterKind(c.Counter)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if kind == window.TableCounter && c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: min_value %d > max_value %d", ErrInvalid, c.MinValue, c.MaxValue)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel. An empty value means warn.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// WindowOptions converts the configuration into window.Options.
func (c *Config) WindowOptions() (*window.Options, error) {
	kind, err := window.ParseCounterKind(c.Counter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	opts := window.DefaultOptions()
	opts.Counter = kind
	opts.MinValue = c.MinValue
	opts.MaxValue = c.MaxValue
	opts.Truncate32 = c.Truncate32

	return &opts, nil
}
