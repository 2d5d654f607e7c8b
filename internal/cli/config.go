// Package cli implements the hillclimb command: it loads configuration,
// reads a heightmap, answers the requested search modes and renders them.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/hillclimb/pathfinder"
)

// Defaults and well-known names.
const (
	DefaultConfigFile = "hillclimb.yaml"
	EnvPrefix         = "HILLCLIMB_"
	StdinInput        = "-"
	ModeBoth          = "both"
	OutputText        = "text"
	OutputTable       = "table"
)

// ErrInvalidConfig is returned when a loaded setting is out of range.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config holds all command settings.
type Config struct {
	Input    string `koanf:"input"`
	Mode     string `koanf:"mode"`
	Output   string `koanf:"output"`
	MaxSteps int    `koanf:"max_steps"`
	Time     bool   `koanf:"time"`
	Verbose  bool   `koanf:"verbose"`
}

// Modes resolves the configured mode name to the searches to run.
func (c *Config) Modes() ([]pathfinder.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(c.Mode), ModeBoth) {
		return pathfinder.Modes(), nil
	}
	m, err := pathfinder.ParseMode(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return []pathfinder.Mode{m}, nil
}

// Validate checks mode, output and the step cap.
func (c *Config) Validate() error {
	if _, err := c.Modes(); err != nil {
		return err
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d must not be negative", ErrInvalidConfig, c.MaxSteps)
	}
	switch c.Output {
	case OutputText, OutputTable:
	default:
		return fmt.Errorf("%w: output %q, want %q or %q", ErrInvalidConfig, c.Output, OutputText, OutputTable)
	}
	return nil
}

// LoadConfig loads configuration from defaults, a YAML file, environment
// variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// With an empty cfgFile, DefaultConfigFile in the working directory is used if present.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input":     StdinInput,
		"mode":      ModeBoth,
		"output":    OutputText,
		"max_steps": 0,
		"time":      false,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment: HILLCLIMB_MODE -> mode, HILLCLIMB_MAX_STEPS -> max_steps
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
