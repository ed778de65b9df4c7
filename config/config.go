// Package config loads the mirrorsvg settings from defaults, an optional YAML
// file and environment variables, in this order.
package config

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all the configuration of the command line tool.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	PNG     PNGConfig     `yaml:"png"`
	Preview PreviewConfig `yaml:"preview"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// PNGConfig holds the settings of the embedded PNG encoder.
type PNGConfig struct {
	Compression string `yaml:"compression"` // default, none, speed or best
}

// PreviewConfig holds the thumbnail box size.
type PreviewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

var compressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

// Load reads configuration from a YAML file and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse config file")
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		PNG: PNGConfig{
			Compression: "default",
		},
		Preview: PreviewConfig{
			Width:  200,
			Height: 200,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	if _, ok := compressionLevels[c.PNG.Compression]; !ok {
		return fmt.Errorf("invalid png compression: %s", c.PNG.Compression)
	}
	if c.Preview.Width < 1 || c.Preview.Height < 1 {
		return fmt.Errorf("invalid preview size: %dx%d", c.Preview.Width, c.Preview.Height)
	}
	return nil
}

// CompressionLevel returns the PNG encoder level matching the configured name.
func (c *Config) CompressionLevel() png.CompressionLevel {
	return compressionLevels[c.PNG.Compression]
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MIRRORSVG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MIRRORSVG_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("MIRRORSVG_PNG_COMPRESSION"); v != "" {
		cfg.PNG.Compression = v
	}
	if v := os.Getenv("MIRRORSVG_PREVIEW_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid MIRRORSVG_PREVIEW_SIZE %q", v)
		}
		cfg.Preview.Width, cfg.Preview.Height = size, size
	}
	return nil
}
