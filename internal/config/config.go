// Package config loads optional TOML overrides for the predictor
// generator's tunable parameters. Every field has a built-in default; a
// config file on disk is entirely optional.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable defaults a caller may override without
// recompiling.
type Config struct {
	Predictor struct {
		CountThreshold uint64 `toml:"count_threshold"`
	} `toml:"predictor"`
}

// Default returns a Config populated with this tree's built-in defaults:
// the predictor's standard count threshold.
func Default() *Config {
	cfg := &Config{}
	cfg.Predictor.CountThreshold = 100
	return cfg
}

// Load reads and parses a TOML config file at path, starting from
// Default() so any field the file omits keeps its built-in value. A
// missing file is not an error: Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
