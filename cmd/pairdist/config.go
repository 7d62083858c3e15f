// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the parameters of one reconstruction run.
type Config struct {
	Dist       float64 // particle distance, unit: sigma
	Density    float64 // packing density Φ, unit: 1
	Peclet     float64 // Peclet number, unit: 1
	Resolution int     // grid points per angle over [0, 2π)

	Table  string // coefficient CSV
	Output string // .xlsx path, empty for none
	TSV    string // TSV path, empty for none

	Workers  int    // 0 means GOMAXPROCS
	LogLevel string // debug, info, warn, error
}

// DefaultConf are the default parameters.
var DefaultConf = Config{
	Dist:       1.0,
	Density:    0.2,
	Peclet:     10,
	Resolution: 180,
	Table:      "Interpolation_parameters.csv",
	LogLevel:   "info",
}

// ParseConfig parses the TOML config file whose path is provided.
// Keys present in the file override DefaultConf.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConf
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}

	return &conf, nil
}

// Validate rejects settings no run can use.
func (c *Config) Validate() error {
	if c.Resolution < 1 {
		return fmt.Errorf("resolution %d: must be >= 1", c.Resolution)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: must be >= 0", c.Workers)
	}
	if c.Table == "" {
		return fmt.Errorf("no coefficient table configured")
	}

	return nil
}
