package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tudu/internal/core/styles"
	"github.com/colonyops/tudu/pkg/hexcolor"
)

// maxSplashDuration bounds the splash delay so a typo cannot lock the UI.
const maxSplashDuration = time.Minute

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("tui.brand_color", c.TUI.BrandColor, strictHex),
		criterio.Run("tui.splash_duration", c.TUI.SplashDuration, splashDurationInRange),
	)
}

// ValidateFile validates the config file at configPath in addition to the
// loaded values. A missing file is not an error.
func (c *Config) ValidateFile(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.Validate(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func knownTheme(name string) error {
	names := styles.ThemeNames()
	if !slices.Contains(names, name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(names, ", "))
	}
	return nil
}

func strictHex(s string) error {
	if !hexcolor.Valid(s) {
		return fmt.Errorf("%q is not a 3, 6 or 8 digit hex color", s)
	}
	return nil
}

func splashDurationInRange(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	if d > maxSplashDuration {
		return fmt.Errorf("must be at most %s", maxSplashDuration)
	}
	return nil
}
