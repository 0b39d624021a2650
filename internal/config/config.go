// Package config loads ezgrid CLI settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EZGRID"

// Config is the complete CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Grid    GridConfig    `yaml:"grid" envconfig:"GRID"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// GridConfig controls how grid files are read.
type GridConfig struct {
	// Values selects the value transform: "text" keeps cells as strings,
	// "number" turns numeric cells into int64 or float64.
	Values string `yaml:"values" envconfig:"VALUES" validate:"oneof=text number"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Pretty bool `yaml:"pretty" envconfig:"PRETTY"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Grid:    GridConfig{Values: "text"},
	}
}

// Load reads path (if not empty), then the environment, then fills unset fields
// with defaults and validates the result. Environment variables win over the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.Grid.Values == "" {
		c.Grid.Values = def.Grid.Values
	}
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
