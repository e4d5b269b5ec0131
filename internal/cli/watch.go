package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/loadingline/internal/config"
	"github.com/rileyhilliard/loadingline/internal/dom"
	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"github.com/rileyhilliard/loadingline/internal/ui"
	"github.com/rileyhilliard/loadingline/pkg/loadingline"
	"github.com/spf13/cobra"
)

var watchStepFlag float64

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Drive a loading line interactively",
	Long: `Open an interactive view of a loading line built from your config.

Keys:
  →/l  add one step        ←/h  remove one step
  0-9  set to n×10%        r/f  reset / fill
  space  show or hide      q    quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("step") {
			cfg.Step = watchStepFlag
		}
		return Watch(cfg)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Float64Var(&watchStepFlag, "step", 10, "percent added or removed per key press")
}

// Watch runs the interactive view until the user quits.
func Watch(cfg *config.Config) error {
	model, err := newWatchModel(cfg)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Interactive view failed",
			"Use 'loadingline render' in non-interactive terminals")
	}
	return nil
}

func newWatchModel(cfg *config.Config) (ui.Model, error) {
	// Debug logs would tear the full-screen view.
	line, err := loadingline.New(dom.NewDiv(""), loadingline.Options{
		MinWidth: cfg.MinWidth,
		Percent:  cfg.Percent,
		Logger:   logger.Noop(),
	})
	if err != nil {
		return ui.Model{}, err
	}

	return ui.NewModel(line, ui.ModelOptions{
		Step:     cfg.Step,
		Gradient: cfg.Bar.Style == config.StyleGradient,
		BarWidth: cfg.Bar.Width,
		Head:     cfg.Bar.Head,
	}), nil
}
