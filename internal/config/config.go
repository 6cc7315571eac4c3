// Package config loads folio's startup settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kyaoi/folio/internal/nav"
)

// EnvPrefix prefixes environment overrides, e.g. FOLIO_THEME=light.
const EnvPrefix = "FOLIO_"

// Config holds the startup settings. None of it is written back; theme and tab
// are only the initial view state.
type Config struct {
	Content  string `koanf:"content"`
	Theme    string `koanf:"theme"`
	Tab      string `koanf:"tab"`
	Tech     string `koanf:"tech"`
	Animate  bool   `koanf:"animate"`
	Mouse    bool   `koanf:"mouse"`
	Watch    bool   `koanf:"watch"`
	LogFile  string `koanf:"log_file"`
	LogLevel string `koanf:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Theme:    "dark",
		Tab:      "skills",
		Animate:  true,
		Mouse:    true,
		Watch:    true,
		LogLevel: "info",
	}
}

// Load layers the defaults, the YAML file at path (when it exists), a .env
// file in the working directory and FOLIO_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q: must be dark or light", c.Theme)
	}
	if _, ok := nav.Parse(c.Tab); !ok {
		return fmt.Errorf("invalid tab %q: must be one of skills, projects, certifications, connect", c.Tab)
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Dark reports whether the configured theme is dark.
func (c *Config) Dark() bool {
	return strings.EqualFold(c.Theme, "dark")
}

// InitialTab returns the configured tab, falling back to Skills.
func (c *Config) InitialTab() nav.Section {
	if tab, ok := nav.Parse(c.Tab); ok {
		return tab
	}
	return nav.Skills
}
