// Package config loads the engine's run parameters by layering defaults,
// an optional TOML file, environment variables (TXENGINE_ prefix), and
// CLI flags, in that priority order (lowest to highest).
package config

import "fmt"

// Config holds everything a single run of the engine needs.
type Config struct {
	// InputPath is the transactions CSV to read. Required; normally set
	// from the CLI's positional argument rather than the file/env layers.
	InputPath string `toml:"-" mapstructure:"-"`
	// NoHeader treats the first row of InputPath as data, not a header.
	NoHeader bool `toml:"no_header" mapstructure:"no_header"`
	// Comments, when true, skips lines starting with '#'.
	Comments bool `toml:"comments" mapstructure:"comments"`
	// Workers is the shard count, W in spec §5. Must be >= 1. Defaults
	// to the host's CPU count.
	Workers int `toml:"workers" mapstructure:"workers"`
	// QueueScale is the bounded-queue capacity multiplier (spec §5's B,
	// in units of 1000 messages).
	QueueScale int `toml:"queue_scale" mapstructure:"queue_scale"`
	// Debug prefixes a batch id onto every diagnostic line (spec §6/§7).
	Debug bool `toml:"debug" mapstructure:"debug"`

	// configPath records where the file layer, if any, was read from.
	configPath string `toml:"-" mapstructure:"-"`
}

// GetConfigPath returns the path the file layer was loaded from, or ""
// if no file was read.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Validate rejects configurations that cannot drive a run.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.QueueScale < 1 {
		return fmt.Errorf("queue_scale must be >= 1, got %d", c.QueueScale)
	}
	return nil
}
