package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"zero stays zero", 0, 0},
		{"fifty stays fifty", 50, 50},
		{"hundred stays hundred", 100, 100},
		{"negative becomes zero", -10, 0},
		{"over hundred becomes hundred", 150, 100},
		{"fractional values work", 33.33, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPercent(tt.input))
		})
	}
}

func TestCalculateBarCounts(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
		wantEmpty  int
	}{
		{"zero percent", 0, 10, 0, 10},
		{"fifty percent", 50, 10, 5, 5},
		{"hundred percent", 100, 10, 10, 0},
		{"33 percent rounds down", 33, 10, 3, 7},
		{"negative clamps", -40, 10, 0, 10},
		{"over hundred clamps", 250, 10, 10, 0},
		{"zero width", 50, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, empty := CalculateBarCounts(tt.percent, tt.width)
			assert.Equal(t, tt.wantFilled, filled, "filled count")
			assert.Equal(t, tt.wantEmpty, empty, "empty count")
		})
	}
}

func TestBuildBarString(t *testing.T) {
	tests := []struct {
		name   string
		filled int
		empty  int
		head   string
		want   string
	}{
		{"no head", 3, 2, "", "███░░"},
		{"head replaces last filled cell", 3, 2, "▸", "██▸░░"},
		{"head only", 1, 3, "▸", "▸░░░"},
		{"nothing filled drops head", 0, 4, "▸", "░░░░"},
		{"all filled", 4, 0, "▸", "███▸"},
		{"empty", 0, 0, "▸", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildBarString(tt.filled, tt.empty, tt.head))
		})
	}
}
