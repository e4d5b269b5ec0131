package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/loadingline/internal/config"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"github.com/rileyhilliard/loadingline/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	noColorFlag bool
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "loadingline",
	Short: "Render and drive a loading line widget",
	Long: `loadingline builds a horizontal progress indicator inside a <div>,
applies set/add/show/hide operations to it, and prints the result as HTML
or as a terminal bar.

Examples:
  loadingline render --percent 40
  loadingline render --min-width 20 --percent 5 --format html
  loadingline render --input page.html --target app --op add:25
  loadingline watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
		if debugFlag {
			os.Setenv(logger.DebugEnv, "1")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: search for "+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadConfig finds, loads and validates the config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
