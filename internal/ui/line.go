package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// LineView is the read side of a loading line. *loadingline.LoadingLine satisfies it.
type LineView interface {
	Percent() int
	Width() int
	Visible() bool
}

// LineConfig configures terminal rendering of a loading line.
type LineConfig struct {
	Width       int    // Bar width in cells
	Head        string // Glyph at the leading edge of the fill
	ShowPercent bool   // Append the logical percent
}

// DefaultLineConfig returns a config with a head glyph and percent suffix.
func DefaultLineConfig(width int) LineConfig {
	return LineConfig{
		Width:       width,
		Head:        "▸",
		ShowPercent: true,
	}
}

// percentSuffixWidth is the width of " -100%".
const percentSuffixWidth = 6

func percentSuffix(v LineView, cfg LineConfig) string {
	if !cfg.ShowPercent {
		return ""
	}
	return fmt.Sprintf(" %4d%%", v.Percent())
}

func blankLine(cfg LineConfig) string {
	n := cfg.Width
	if cfg.ShowPercent {
		n += percentSuffixWidth
	}
	return strings.Repeat(" ", n)
}

// RenderLine draws v as a block bar. The fill covers v.Width() percent of the
// bar; the suffix shows the logical percent, which may be negative or below
// the fill. A hidden line renders as blank space of the same width.
//
// Output format: ████████▸░░░░░░░   45%
func RenderLine(v LineView, cfg LineConfig) string {
	if cfg.Width <= 0 {
		return ""
	}
	if !v.Visible() {
		return blankLine(cfg)
	}

	filled, empty := CalculateBarCounts(float64(v.Width()), cfg.Width)
	fill := BuildBarString(filled, 0, cfg.Head)
	rest := BuildBarString(0, empty, "")

	fillStyle := lipgloss.NewStyle().Foreground(LineColor(v.Width()))
	return fillStyle.Render(fill) + MutedStyle().Render(rest) + percentSuffix(v, cfg)
}

// RenderGradient draws v with the bubbles progress component.
func RenderGradient(v LineView, cfg LineConfig) string {
	if cfg.Width <= 0 {
		return ""
	}
	if !v.Visible() {
		return blankLine(cfg)
	}

	bar := progress.New(
		progress.WithGradient(GradientStart, GradientEnd),
		progress.WithWidth(cfg.Width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(ClampPercent(float64(v.Width()))/100) + percentSuffix(v, cfg)
}

// TerminalWidth returns the column count of the terminal on fd, or fallback
// if fd is not a terminal.
func TerminalWidth(fd int, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// BarWidthFor returns a bar width that leaves room for the percent suffix in
// a terminal of the given column count.
func BarWidthFor(columns int) int {
	w := columns - percentSuffixWidth - 1
	if w < 10 {
		return 10
	}
	return w
}
