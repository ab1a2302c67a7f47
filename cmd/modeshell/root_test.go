package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeshell/internal/config"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "modeshell dev\n", out.String())
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modeshell.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n[ui]\nhost = \"desktop\"\n"), 0o600))

	tests := []struct {
		name      string
		args      []string
		wantLevel string
		wantHost  string
	}{
		{name: "file only", args: []string{"--config", path}, wantLevel: "warn", wantHost: config.HostDesktop},
		{name: "flags win", args: []string{"--config", path, "--log-level", "debug", "--host", "terminal"}, wantLevel: "debug", wantHost: config.HostTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			configPath, err := cmd.Flags().GetString("config")
			require.NoError(t, err)
			level, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			host, err := cmd.Flags().GetString("host")
			require.NoError(t, err)

			cfg, err := loadConfig(cmd, rootFlags{configPath: configPath, logLevel: level, host: host})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
			assert.Equal(t, tt.wantHost, cfg.UI.Host)
		})
	}
}

func TestLoadConfigRejectsBadHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modeshell.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--host", "web"}))

	_, err := loadConfig(cmd, rootFlags{configPath: path, host: "web"})
	assert.Error(t, err)
}
