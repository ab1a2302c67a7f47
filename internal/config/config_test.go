package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "modeshell", c.Window.Title)
	assert.Equal(t, float32(600), c.Window.Width)
	assert.Equal(t, float32(370), c.Window.Height)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, HostDesktop, c.UI.Host)
	assert.NoError(t, c.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modeshell.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "shell"
width = 800

[log]
level = "debug"
`), 0o600))

	t.Setenv("MODESHELL_UI_HOST", "terminal")
	t.Setenv("MODESHELL_LOG_JSON", "true")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shell", c.Window.Title)
	assert.Equal(t, float32(800), c.Window.Width)
	assert.Equal(t, float32(370), c.Window.Height)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, HostTerminal, c.UI.Host)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero width", mutate: func(c *Config) { c.Window.Width = 0 }},
		{name: "negative height", mutate: func(c *Config) { c.Window.Height = -1 }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "chatty" }},
		{name: "bad host", mutate: func(c *Config) { c.UI.Host = "web" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
