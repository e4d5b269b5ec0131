package ui

import "strings"

// Bar cell characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty cells for a bar.
// Percent is clamped to 0-100 first.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	filled = int((ClampPercent(percent) / 100.0) * float64(width))
	empty = width - filled
	return
}

// BuildBarString builds the raw bar (without styling) from filled/empty counts.
// A non-empty head replaces the last filled cell, so the bar keeps its width.
func BuildBarString(filledCount, emptyCount int, head string) string {
	var sb strings.Builder
	sb.Grow((filledCount + emptyCount) * 3)

	body := filledCount
	if head != "" && filledCount > 0 {
		body--
	}
	for i := 0; i < body; i++ {
		sb.WriteRune(BarFilled)
	}
	if body < filledCount {
		sb.WriteString(head)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}

	return sb.String()
}
