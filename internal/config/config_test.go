package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/folio/internal/nav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "skills", cfg.Tab)
	assert.True(t, cfg.Animate)
	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Dark())
	assert.Equal(t, nav.Skills, cfg.InitialTab())
}

func TestLoadFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "folio.yml")
	data := "theme: light\ntab: testimonials\ntech: React\nanimate: false\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.Dark())
	assert.Equal(t, nav.Certifications, cfg.InitialTab())
	assert.Equal(t, "React", cfg.Tech)
	assert.False(t, cfg.Animate)
	assert.True(t, cfg.Mouse, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "folio.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))
	t.Setenv("FOLIO_THEME", "dark")
	t.Setenv("FOLIO_TAB", "connect")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, nav.Connect, cfg.InitialTab())
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_TECH=Go\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FOLIO_TECH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Go", cfg.Tech)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"light", func(c *Config) { c.Theme = "LIGHT" }, true},
		{"bad theme", func(c *Config) { c.Theme = "sepia" }, false},
		{"home tab", func(c *Config) { c.Tab = "home" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if tc.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}
