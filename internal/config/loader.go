package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".loadingline.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/loadingline"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

var log = logger.NewEnvLogger("[config]")

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'loadingline init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .loadingline.yaml in current directory
// 3. .loadingline.yaml in parent directories (stops at git root or home)
// 4. ~/.config/loadingline/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	home, _ := os.UserHomeDir()
	if path := findUpward(cwd, home); path != "" {
		return path, nil
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findUpward looks for ConfigFileName in dir and its parents. It does not
// climb above home or past a git root.
func findUpward(dir, home string) string {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads config from the found path, or returns defaults if none exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		log.Debug("no config file found, using defaults")
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// Numbers in YAML may arrive as int, float or string; coerce by hand so
	// the two fields can fail differently.
	if raw := v.Get("min_width"); raw != nil {
		mw, err := cast.ToFloat64E(raw)
		if err != nil {
			log.Warn("min_width %v in %s is not a number, using 0", raw, path)
			mw = 0
		}
		cfg.MinWidth = mw
	}

	if raw := v.Get("percent"); raw != nil {
		p, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrPercent,
				fmt.Sprintf("percent %v in %s is not a number", raw, path),
				"Set percent to a value from 0 to 100")
		}
		cfg.Percent = p
	}

	log.Debug("loaded config from %s", path)
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("step", cfg.Step)
	v.SetDefault("bar.width", cfg.Bar.Width)
	v.SetDefault("bar.style", cfg.Bar.Style)
	v.SetDefault("bar.head", cfg.Bar.Head)
	v.SetDefault("output", cfg.Output)
}
