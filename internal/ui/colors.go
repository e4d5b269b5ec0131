package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication (ANSI codes for terminal compatibility).
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Gradient endpoints for the gradient bar style.
const (
	GradientStart = "#5A56E0"
	GradientEnd   = "#EE6FF8"
)

// LineColor picks the fill color for a rendered width. Higher is better.
func LineColor(width int) lipgloss.Color {
	switch {
	case width >= 100:
		return ColorSuccess
	case width >= 50:
		return ColorInfo
	default:
		return ColorSecondary
	}
}

// ErrorStyle is used for validation messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// MutedStyle is used for secondary text such as help and empty cells.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches lipgloss to plain ASCII output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// PrintError writes a styled error line to w.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle().Render(SymbolFail+" "+msg))
}
