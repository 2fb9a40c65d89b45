// Package config provides YAML configuration loading and validation.
// It handles environment variable expansion, default value application,
// and rejects values the renderer cannot use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/clikit/internal/env"
	"github.com/dmagro/clikit/internal/format"
	"github.com/dmagro/clikit/internal/logging"
)

// DefaultPath is used when neither --config nor CLIKIT_CONFIG is given.
const DefaultPath = "clikit.yaml"

// logger is resolved per call so it picks up the level set by logging.Setup.
func logger() *log.Logger {
	return logging.New("config")
}

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Color   string            `yaml:"color"`   // auto, always or never
	Palette map[string]string `yaml:"palette"` // token -> SGR parameters, merged over the built-in table
	Bar     Bar               `yaml:"bar"`
	Confirm Confirm           `yaml:"confirm"`
}

// Bar controls the progress bar glyphs.
type Bar struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
	Fill  string `yaml:"fill"`
}

// Confirm holds the answers treated as "yes".
type Confirm struct {
	Accept []string `yaml:"accept"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate applies defaults and rejects unusable values.
func (c *Config) Validate() error {
	mode, err := env.ParseColorMode(c.Color)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	c.Color = string(mode)

	if c.Bar.Open == "" {
		c.Bar.Open = "["
	}
	if c.Bar.Close == "" {
		c.Bar.Close = "]"
	}
	if c.Bar.Fill == "" {
		c.Bar.Fill = "="
	}
	if utf8.RuneCountInString(c.Bar.Fill) != 1 {
		return fmt.Errorf("bar.fill must be a single character, got %q", c.Bar.Fill)
	}
	if format.VisibleLength(c.Bar.Open) > 3 || format.VisibleLength(c.Bar.Close) > 3 {
		logger().Warn("long progress bar delimiters will widen every bar", "open", c.Bar.Open, "close", c.Bar.Close)
	}

	if len(c.Confirm.Accept) == 0 {
		c.Confirm.Accept = []string{"Y", "Yes", "y", "yes", "1"}
	}
	for i, tok := range c.Confirm.Accept {
		if tok == "" {
			return fmt.Errorf("confirm.accept[%d] is empty", i)
		}
	}

	if _, err := format.NewPalette(c.Palette, true); err != nil {
		return err
	}

	return nil
}

// ColorMode returns the validated color mode.
func (c *Config) ColorMode() env.ColorMode {
	return env.ColorMode(c.Color)
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// references before parsing. When optional is true a missing file yields
// Default() instead of an error.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			logger().Debug("no config file, using defaults", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger().Debug("loaded config", "path", path, "color", cfg.Color, "palette_overrides", len(cfg.Palette))
	return &cfg, nil
}
