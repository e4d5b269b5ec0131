// Package ui renders loading lines in the terminal.
//
// RenderLine draws a block bar whose fill covers the line's rendered width,
// with a head glyph at the leading edge and the logical percent as a suffix:
//
//	ui.RenderLine(line, ui.DefaultLineConfig(20))  // ████████▸░░░░░░░░░░░   45%
//
// RenderGradient draws the same state with the bubbles progress component.
// Model wraps a line in a Bubble Tea program for interactive use.
//
// Colors are ANSI codes; call DisableColors() for --no-color output.
package ui
