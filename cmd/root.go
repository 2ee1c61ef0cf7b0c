package cmd

import (
	"os"

	cfgcmd "nathanbeddoewebdev/ecoprint/cmd/commands/config"
	"nathanbeddoewebdev/ecoprint/cmd/commands/estimate"
	"nathanbeddoewebdev/ecoprint/cmd/commands/serve"
	"nathanbeddoewebdev/ecoprint/internal/config"
	"nathanbeddoewebdev/ecoprint/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "ecoprint",
		Short: "Estimate the carbon footprint of a website",
		Long: `ecoprint estimates the monthly and yearly CO2 emissions of a website from
its page weight, traffic and hosting setup, scores it from 0 to 100 and
suggests ways to reduce it.

Run without arguments in a terminal to open the interactive estimator.

Quick start:
  ecoprint                                        # Interactive form and results
  ecoprint estimate --page-size 2048 --visits 10000 --server-location 0.5
  ecoprint estimate --region eu-north-1 --cdn --caching 0.8 -o json
  ecoprint estimate --page-size 3000 --chart impact.png
  ecoprint serve                                  # HTTP API on :8080`,
		PersistentPreRunE: setupLogger,
		RunE:              runRoot,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to the log-level config key, then warn")
	cmd.PersistentFlags().String("log-format", logging.FormatConsole, "Log format (console or json)")

	cmd.AddCommand(estimate.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(serve.NewCommand())

	return cmd
}

// setupLogger builds the process logger and stores it in the command context
// so subcommands can reach it through zerolog.Ctx.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	var cfgErr error
	if level == "" {
		var cfg *config.Config
		cfg, cfgErr = config.Load()
		if cfgErr == nil {
			level = cfg.LogLevel
		}
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("ignoring unreadable config for log level")
	}

	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

// runRoot opens the interactive estimator when attached to a terminal and
// prints help otherwise.
func runRoot(cmd *cobra.Command, _ []string) error {
	if !estimate.IsTerminal(cmd) {
		return cmd.Help()
	}
	return estimate.RunInteractive(cmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
