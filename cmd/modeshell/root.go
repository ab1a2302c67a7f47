package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modeshell/internal/app"
	"modeshell/internal/config"
)

type rootFlags struct {
	configPath string
	logLevel   string
	host       string
	jsonLogs   bool
}

// apply overrides loaded config values with flags the user actually set.
func (f rootFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("host") {
		cfg.UI.Host = f.host
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Log.JSON = f.jsonLogs
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           app.AppName,
		Short:         "A single-window shell with a dark/light toggle, zoom and fullscreen",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			application, err := app.NewApplication(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("application initialization failed: %w", err)
			}
			return application.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a TOML config file (default $MODESHELL_CONFIG or ~/.config/modeshell/modeshell.toml)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error or off")
	cmd.Flags().StringVar(&flags.host, "host", config.HostDesktop, "host runtime: desktop or terminal")
	cmd.Flags().BoolVar(&flags.jsonLogs, "json-logs", false, "emit JSON log lines")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(config.PathFromEnv(flags.configPath))
	if err != nil {
		return config.Config{}, err
	}
	flags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.AppName, app.AppVersion)
		},
	}
}
