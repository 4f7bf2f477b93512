// Package config loads tuning configuration for the parray command from
// a YAML file. All values are optional; zero values select the engine
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the parray command.
type Config struct {
	// Workers caps the number of parallel workers. 0 leaves the worker
	// count at the number of available CPUs.
	Workers int `yaml:"workers"`

	Sort  SortConfig  `yaml:"sort"`
	Bench BenchConfig `yaml:"bench"`
}

// SortConfig tunes the parallel merge sort. Both knobs are empirically
// chosen and machine-dependent.
type SortConfig struct {
	// Cutoff is the range length at or below which sort tasks run
	// sequentially. 0 selects the engine default.
	Cutoff int `yaml:"cutoff"`

	// Depth is the fork fan-out budget. 0 seeds it with the worker count.
	Depth int `yaml:"depth"`
}

// BenchConfig tunes the bench command.
type BenchConfig struct {
	// Size is the number of elements benchmarked per operation.
	Size int `yaml:"size"`

	// Seed seeds the random input data. 0 derives a seed from the clock.
	Seed int64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bench: BenchConfig{Size: 1000000},
	}
}

// Load reads a YAML configuration file on top of the defaults and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot honor.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	if c.Sort.Cutoff < 0 {
		return fmt.Errorf("config: sort.cutoff must be >= 0, got %d", c.Sort.Cutoff)
	}
	if c.Sort.Depth < 0 {
		return fmt.Errorf("config: sort.depth must be >= 0, got %d", c.Sort.Depth)
	}
	if c.Bench.Size < 0 {
		return fmt.Errorf("config: bench.size must be >= 0, got %d", c.Bench.Size)
	}
	return nil
}
