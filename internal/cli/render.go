package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/loadingline/internal/config"
	"github.com/rileyhilliard/loadingline/internal/dom"
	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"github.com/rileyhilliard/loadingline/internal/script"
	"github.com/rileyhilliard/loadingline/internal/ui"
	"github.com/rileyhilliard/loadingline/pkg/loadingline"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	MinWidth string   // Overrides config when non-empty; non-numeric means 0
	Percent  string   // Overrides config when non-empty
	Ops      []string // Appended after the config's ops
	Format   string   // html, bar or gradient; empty uses config
	Input    string   // HTML file to render into
	Target   string   // id of the <div> inside Input
	Width    int      // Bar width; 0 uses config, then terminal width
}

var renderOpts RenderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build a loading line, apply operations, and print it",
	Long: `Build a loading line inside a <div>, apply operations in order, and print
the result.

Operations:
  set:<n>   set the percent (truncated, clamped to -100..100)
  add:<n>   add to the percent (result clamped to 0..100)
  show      make the line visible
  hide      hide the line

Examples:
  loadingline render --percent 40
  loadingline render --op set:90 --op add:50 --format html
  loadingline render --input page.html --target progress`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return Render(cmd.OutOrStdout(), cfg, renderOpts)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOpts.MinWidth, "min-width", "", "minimum rendered width in percent")
	renderCmd.Flags().StringVar(&renderOpts.Percent, "percent", "", "initial percent")
	renderCmd.Flags().StringArrayVar(&renderOpts.Ops, "op", nil, "operation to apply (repeatable): set:<n>, add:<n>, show, hide")
	renderCmd.Flags().StringVarP(&renderOpts.Format, "format", "f", "", "output format: html, bar, gradient")
	renderCmd.Flags().StringVar(&renderOpts.Input, "input", "", "HTML file to render the line into")
	renderCmd.Flags().StringVar(&renderOpts.Target, "target", "", "id of the <div> in --input to use as container")
	renderCmd.Flags().IntVar(&renderOpts.Width, "width", 0, "bar width in cells")
}

// Render builds a loading line from cfg and opts and writes it to w.
func Render(w io.Writer, cfg *config.Config, opts RenderOptions) error {
	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cfg.Output
	}
	if err := config.ValidateOutput(format); err != nil {
		return err
	}

	steps, err := script.ParseAll(append(append([]string{}, cfg.Ops...), opts.Ops...))
	if err != nil {
		return err
	}

	doc, container, err := resolveContainer(opts)
	if err != nil {
		return err
	}

	line, err := loadingline.New(container, loadingline.Options{
		MinWidth: cfg.MinWidth,
		Percent:  cfg.Percent,
		Logger:   logger.NewEnvLogger("[widget]"),
	})
	if err != nil {
		return err
	}

	if err := script.Apply(line, steps); err != nil {
		return err
	}

	lineCfg := ui.DefaultLineConfig(barWidth(opts.Width, cfg.Bar.Width))
	lineCfg.Head = cfg.Bar.Head

	// bar.style only picks the look when the format itself came from config.
	gradient := format == config.OutputGradient ||
		(opts.Format == "" && format == config.OutputBar && cfg.Bar.Style == config.StyleGradient)

	switch {
	case format == config.OutputHTML:
		if err := dom.Render(w, doc); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
	case gradient:
		_, err = fmt.Fprintln(w, ui.RenderGradient(line, lineCfg))
	default:
		_, err = fmt.Fprintln(w, ui.RenderLine(line, lineCfg))
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Failed to write output", "Check that stdout is writable")
	}
	return nil
}

// applyOverrides merges flag values into cfg. A non-numeric min width falls
// back to 0; a non-numeric percent is an error.
func applyOverrides(cfg *config.Config, opts RenderOptions) error {
	if opts.MinWidth != "" {
		mw, err := cast.ToFloat64E(opts.MinWidth)
		if err != nil {
			logger.Default().Warn("--min-width %q is not a number, using 0", opts.MinWidth)
			mw = 0
		}
		cfg.MinWidth = mw
	}

	if opts.Percent != "" {
		p, err := cast.ToFloat64E(opts.Percent)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrPercent,
				fmt.Sprintf("--percent %q is not a number", opts.Percent),
				"Pass a value from 0 to 100")
		}
		cfg.Percent = p
	}
	return nil
}

// resolveContainer returns the node to print for html output and the <div>
// the line is built in.
func resolveContainer(opts RenderOptions) (*html.Node, *html.Node, error) {
	if opts.Input == "" {
		if opts.Target != "" {
			return nil, nil, errors.New(errors.ErrConfig,
				"--target needs --input",
				"Pass the HTML file that contains the target <div>")
		}
		div := dom.NewDiv("")
		return div, div, nil
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open input file: "+opts.Input,
			"Check the path is correct")
	}
	defer f.Close()

	doc, err := dom.ParseDocument(f)
	if err != nil {
		return nil, nil, err
	}

	if opts.Target == "" {
		return nil, nil, errors.New(errors.ErrContainer,
			"--input needs --target",
			"Pass the id of the <div> to render into, e.g. --target app")
	}

	container := dom.FindByID(doc, opts.Target)
	if container == nil {
		return nil, nil, errors.New(errors.ErrContainer,
			fmt.Sprintf("No element with id %q in %s", opts.Target, opts.Input),
			"Check the id of the target <div>")
	}
	return doc, container, nil
}

func barWidth(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	if configured > 0 {
		return configured
	}
	return ui.BarWidthFor(ui.TerminalWidth(int(os.Stdout.Fd()), 80))
}
