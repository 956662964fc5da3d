// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/katalvlaran/glacmb/internal/logging"
	"github.com/katalvlaran/glacmb/massbalance"
)

// Config represents the complete glacmb configuration
type Config struct {
	Model     ModelConfig     `mapstructure:"model"`
	Constants ConstantsConfig `mapstructure:"constants"`
	Store     StoreConfig     `mapstructure:"store"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ModelConfig holds the random linear mass-balance parameters
type ModelConfig struct {
	// Gradient is the mass-balance gradient in mm w.e. yr-1 m-1
	Gradient float64 `mapstructure:"gradient"`
	// Percentile of the glacier topography used as reference ELA, in [0, 100]
	Percentile float64 `mapstructure:"percentile"`
	// SigmaELA is the standard deviation of the yearly ELA in metres
	SigmaELA float64 `mapstructure:"sigma_ela"`
	// Seed for the ELA random stream; only used when Seeded is true.
	// Unseeded runs cannot be reproduced.
	Seed   uint64 `mapstructure:"seed"`
	Seeded bool   `mapstructure:"seeded"`
}

// ConstantsConfig holds the physical constants for unit conversion
type ConstantsConfig struct {
	SecondsPerYear float64 `mapstructure:"seconds_per_year"`
	IceDensity     float64 `mapstructure:"ice_density"`
}

// StoreConfig locates glacier directories
type StoreConfig struct {
	// WorkingDir is the root holding per_glacier/
	WorkingDir string `mapstructure:"working_dir"`
}

// LoggingConfig controls the structured log output
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir receives glacmb.log; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Gradient:   massbalance.DefaultGradient,
			Percentile: massbalance.DefaultPercentile,
			SigmaELA:   massbalance.DefaultSigmaELA,
			Seed:       0,
			Seeded:     true,
		},
		Constants: ConstantsConfig{
			SecondsPerYear: massbalance.DefaultSecondsPerYear,
			IceDensity:     massbalance.DefaultIceDensity,
		},
		Store: StoreConfig{
			WorkingDir: ".",
		},
		Logging: LoggingConfig{
			Level: "WARN",
		},
	}
}

// SetDefaults registers every default on v so unset keys resolve
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("model.gradient", defaults.Model.Gradient)
	v.SetDefault("model.percentile", defaults.Model.Percentile)
	v.SetDefault("model.sigma_ela", defaults.Model.SigmaELA)
	v.SetDefault("model.seed", defaults.Model.Seed)
	v.SetDefault("model.seeded", defaults.Model.Seeded)

	v.SetDefault("constants.seconds_per_year", defaults.Constants.SecondsPerYear)
	v.SetDefault("constants.ice_density", defaults.Constants.IceDensity)

	v.SetDefault("store.working_dir", defaults.Store.WorkingDir)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from v into a Config struct, validates it
// and normalizes the log level to upper case
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	cfg.Logging.Level = logging.ParseLevel(cfg.Logging.Level)

	return &cfg, nil
}

// PhysicalConstants converts the constants section
func (c *Config) PhysicalConstants() massbalance.Constants {
	return massbalance.Constants{
		SecondsPerYear: c.Constants.SecondsPerYear,
		IceDensity:     c.Constants.IceDensity,
	}
}

// ModelOptions converts the model section into constructor options.
// Call Validate first: the options panic on non-finite values.
func (c *Config) ModelOptions() []massbalance.Option {
	opts := []massbalance.Option{
		massbalance.WithGradient(c.Model.Gradient),
		massbalance.WithPercentile(c.Model.Percentile),
		massbalance.WithSigmaELA(c.Model.SigmaELA),
		massbalance.WithConstants(c.PhysicalConstants()),
	}
	if c.Model.Seeded {
		opts = append(opts, massbalance.WithSeed(c.Model.Seed))
	}

	return opts
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glacmb")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".glacmb"
	}
	return filepath.Join(home, ".config", "glacmb")
}
