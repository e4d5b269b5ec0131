package config

import (
	"fmt"

	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/script"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but loadingline only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade loadingline or lower the version field")
	}

	if cfg.Step <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("step must be positive, got %v", cfg.Step),
			"Set step to something like 5 or 10")
	}

	if err := validateBar(cfg.Bar); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'bar' section in your "+ConfigFileName)
	}

	if err := ValidateOutput(cfg.Output); err != nil {
		return err
	}

	if _, err := script.ParseAll(cfg.Ops); err != nil {
		return err
	}

	return nil
}

func validateBar(bar BarConfig) error {
	if bar.Width < 0 {
		return fmt.Errorf("bar.width can't be negative (got %d)", bar.Width)
	}
	switch bar.Style {
	case StyleBlocks, StyleGradient:
	default:
		return fmt.Errorf("bar.style %q isn't supported, use %q or %q", bar.Style, StyleBlocks, StyleGradient)
	}
	return nil
}

// ValidateOutput checks an output format name.
func ValidateOutput(output string) error {
	switch output {
	case OutputHTML, OutputBar, OutputGradient:
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown output format %q", output),
		fmt.Sprintf("Use one of: %s, %s, %s", OutputHTML, OutputBar, OutputGradient))
}
