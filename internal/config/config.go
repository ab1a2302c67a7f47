// Package config loads the static startup configuration: window chrome,
// logging and which host runtime to drive.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"modeshell/internal/logger"
)

const (
	HostDesktop  = "desktop"
	HostTerminal = "terminal"
)

// Config holds application configuration.
type Config struct {
	Window WindowConfig
	Log    LogConfig
	UI     UIConfig
}

// WindowConfig is applied once when the window is created.
type WindowConfig struct {
	Title  string
	Width  float32
	Height float32
	Icon   string
	Font   string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type UIConfig struct {
	Host string
}

// Load reads configuration from file and env. Env var overrides use prefix
// MODESHELL_. An explicit path that cannot be read is an error; a missing
// default file is not.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("modeshell")
		v.AddConfigPath("$XDG_CONFIG_HOME/modeshell")
		v.AddConfigPath("$HOME/.config/modeshell")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MODESHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration without reading file or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "modeshell")
	v.SetDefault("window.width", 600)
	v.SetDefault("window.height", 370)
	v.SetDefault("window.icon", "")
	v.SetDefault("window.font", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("ui.host", HostDesktop)
}

// Validate rejects values the hosts cannot use.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %vx%v: must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.UI.Host {
	case HostDesktop, HostTerminal:
	default:
		return fmt.Errorf("ui.host %q: want %q or %q", c.UI.Host, HostDesktop, HostTerminal)
	}
	return nil
}

// PathFromEnv returns explicit when set, otherwise $MODESHELL_CONFIG.
func PathFromEnv(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv("MODESHELL_CONFIG")
}
