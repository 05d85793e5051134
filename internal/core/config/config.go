// Package config handles configuration loading and validation for tudu.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tudu/internal/core/styles"
)

// DefaultSplashDuration is how long the splash screen stays up before the
// task list is shown.
const DefaultSplashDuration = 2 * time.Second

// Config holds the application configuration.
type Config struct {
	TUI TUIConfig `yaml:"tui"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme          string        `yaml:"theme"`           // built-in theme name
	BrandColor     string        `yaml:"brand_color"`     // hex accent color
	Splash         *bool         `yaml:"splash"`          // nil = enabled
	SplashDuration time.Duration `yaml:"splash_duration"` // e.g. "2s"
}

// SplashEnabled reports whether the splash screen should be shown.
func (t TUIConfig) SplashEnabled() bool {
	return t.Splash == nil || *t.Splash
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:          styles.DefaultTheme,
			BrandColor:     styles.BrandColor,
			SplashDuration: DefaultSplashDuration,
		},
	}
}

// Read loads configuration from the given path and applies defaults. If
// configPath is empty or doesn't exist, returns defaults. Validation is left
// to the caller so that `config validate` can report a broken file.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.BrandColor == "" {
		c.TUI.BrandColor = defaults.TUI.BrandColor
	}
	if c.TUI.SplashDuration == 0 {
		c.TUI.SplashDuration = defaults.TUI.SplashDuration
	}
}

// Palette returns the configured theme palette with the brand color applied.
// Unknown theme names fall back to the default theme.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.TUI.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return styles.WithBrand(p, c.TUI.BrandColor)
}
