// Package command contains the CLI command constructors.
package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcplatform/marketplace/internal/infrastructure/config"
	"github.com/vcplatform/marketplace/pkg/logger"
)

const serviceName = "marketplace"

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	var (
		logLevel string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:          "marketplace [command] [flags]",
		Short:        "The startup/investor marketplace API",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if !cmd.Flags().Changed("pretty") {
				pretty = !cfg.IsProduction()
			}

			log := logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  pretty,
				Service: serviceName,
			})
			log.Debug().Str("env", cfg.Env).Str("log_level", cfg.LogLevel).Msg("configuration loaded")

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum log level (trace, debug, info, warn, error); overrides LOG_LEVEL")
	cmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-friendly console logs (default outside production)")

	cmd.AddCommand(
		serveCommand(),
		userCommand(),
		seedCommand(),
	)

	return cmd
}
