package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolHidden  = "○" // Widget hidden
	SymbolShown   = "●" // Widget visible
)
