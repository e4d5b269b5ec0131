package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/loadingline/internal/config"
	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/ui"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write the config into
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

var initOpts InitOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create " + config.ConfigFileName,
	Long: `Create a ` + config.ConfigFileName + ` file in the current directory.

Prompts for the minimum width, initial percent, watch step and output format.

Examples:
  loadingline init
  loadingline init --non-interactive
  loadingline init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), initOpts)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initOpts.Overwrite, "force", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "write defaults without prompting")
}

// Init writes a new config file.
func Init(w io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# loadingline configuration
# Run 'loadingline render' or 'loadingline watch' to use it

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SymbolSuccess, configPath)
	return nil
}

func promptConfig(cfg *config.Config) error {
	minWidth := cast.ToString(cfg.MinWidth)
	percent := cast.ToString(cfg.Percent)
	step := cast.ToString(cfg.Step)
	output := cfg.Output

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum width").
				Description("The line never renders narrower than this (percent)").
				Value(&minWidth).
				Validate(validateNumber),
			huh.NewInput().
				Title("Initial percent").
				Description("Truncated and clamped to -100..100").
				Value(&percent).
				Validate(validateNumber),
			huh.NewInput().
				Title("Watch step").
				Description("Percent added or removed per key press in 'loadingline watch'").
				Value(&step).
				Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output").
				Options(
					huh.NewOption("Terminal bar", config.OutputBar),
					huh.NewOption("Gradient bar", config.OutputGradient),
					huh.NewOption("HTML", config.OutputHTML),
				).
				Value(&output),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.MinWidth = cast.ToFloat64(minWidth)
	cfg.Percent = cast.ToFloat64(percent)
	cfg.Step = cast.ToFloat64(step)
	cfg.Output = output
	return nil
}

func validateNumber(s string) error {
	if _, err := cast.ToFloat64E(s); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}
