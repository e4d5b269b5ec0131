package config

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Bar styles.
const (
	StyleBlocks   = "blocks"
	StyleGradient = "gradient"
)

// Output formats.
const (
	OutputHTML     = "html"
	OutputBar      = "bar"
	OutputGradient = "gradient"
)

// Config represents a .loadingline.yaml file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// MinWidth is the rendered-width floor. Non-numeric values resolve to 0.
	// Decoded by hand, see parseConfig.
	MinWidth float64 `yaml:"min_width" mapstructure:"-"`

	// Percent is the initial percent. Non-numeric values are an error.
	Percent float64 `yaml:"percent" mapstructure:"-"`

	// Step is how far one key press moves the line in watch mode.
	Step float64 `yaml:"step" mapstructure:"step"`

	// Ops run after construction, e.g. ["add:10", "hide"].
	Ops []string `yaml:"ops,omitempty" mapstructure:"ops"`

	Bar BarConfig `yaml:"bar" mapstructure:"bar"`

	// Output is the default render format: html, bar or gradient.
	Output string `yaml:"output" mapstructure:"output"`
}

// BarConfig controls terminal rendering.
type BarConfig struct {
	// Width in cells. 0 means use the terminal width.
	Width int `yaml:"width" mapstructure:"width"`

	// Style is blocks or gradient.
	Style string `yaml:"style" mapstructure:"style"`

	// Head is the glyph drawn at the leading edge of the fill.
	Head string `yaml:"head" mapstructure:"head"`
}

// DefaultConfig returns a config with every field set to its default.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		MinWidth: 0,
		Percent:  0,
		Step:     10,
		Ops:      []string{},
		Bar: BarConfig{
			Width: 40,
			Style: StyleBlocks,
			Head:  "▸",
		},
		Output: OutputBar,
	}
}
