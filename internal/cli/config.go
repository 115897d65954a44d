package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI defaults loadable from a TOML file via --config.
// Scenario files and flags override these values; see resolveParams.
type Config struct {
	// Penalty is the default junction penalty.
	Penalty float64 `toml:"penalty"`
	// Seed is the default tie-breaking seed.
	Seed int64 `toml:"seed"`
	// Render configures the terminal renderer.
	Render RenderConfig `toml:"render"`
}

// RenderConfig controls how solved networks are drawn.
type RenderConfig struct {
	// Color enables lipgloss styling of the rendered grid.
	Color bool `toml:"color"`
}

// defaultConfig returns the built-in defaults: no junction penalty, seed 0,
// colored rendering.
func defaultConfig() Config {
	return Config{
		Penalty: 0,
		Seed:    0,
		Render:  RenderConfig{Color: true},
	}
}

// loadConfig reads a TOML config file over the built-in defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cli: loading config %q: %w", path, err)
	}
	if cfg.Penalty < 0 {
		return Config{}, fmt.Errorf("cli: config %q: penalty must be non-negative", path)
	}

	return cfg, nil
}
