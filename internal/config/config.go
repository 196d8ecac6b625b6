// Package config holds pymap's runtime configuration, loaded from
// .pymap.yml with flag and environment overrides via viper.
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"

	"github.com/mvp-joe/pymap/internal/discovery"
)

// Config is the complete pymap configuration.
type Config struct {
	// Ignore lists path-segment patterns skipped during discovery.
	Ignore []string `yaml:"ignore" mapstructure:"ignore"`
	// Workers bounds the parallel parse phase; 0 means NumCPU.
	Workers int `yaml:"workers" mapstructure:"workers"`
	// Alphabetical makes alphabetical symbol ordering the default.
	Alphabetical bool `yaml:"alphabetical" mapstructure:"alphabetical"`
}

// Default returns the built-in configuration.
func Default() *Config {
	ignore := make([]string, len(discovery.DefaultIgnore))
	copy(ignore, discovery.DefaultIgnore)
	return &Config{
		Ignore:  ignore,
		Workers: 0,
	}
}

// Load resolves the configuration through viper (flags > env > file >
// defaults) and normalizes it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if len(cfg.Ignore) == 0 {
		cfg.Ignore = Default().Ignore
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}
