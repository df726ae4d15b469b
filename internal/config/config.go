// Package config provides configuration loading for the datedim CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Output configuration
	Output OutputConfig `mapstructure:"output"`

	// Generate configuration
	Generate GenerateConfig `mapstructure:"generate"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig holds output target configuration.
type OutputConfig struct {
	// Format is the default output format: csv, parquet, sqlite, postgres.
	Format string `mapstructure:"format"`

	// Path is the default output file path. Empty derives the path from
	// the format.
	Path string `mapstructure:"path"`

	// Postgres holds the postgres sink configuration.
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig holds PostgreSQL sink configuration.
type PostgresConfig struct {
	DSN   string `mapstructure:"dsn"`
	Table string `mapstructure:"table"`
}

// GenerateConfig holds generation defaults.
type GenerateConfig struct {
	// HolidayNames enables per-calendar holiday name columns by default.
	HolidayNames bool `mapstructure:"holidayNames"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "parquet",
			Path:   "",
			Postgres: PostgresConfig{
				DSN:   "",
				Table: "datedimension",
			},
		},
		Generate: GenerateConfig{
			HolidayNames: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from file and environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".datedim"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Environment variables
	v.SetEnvPrefix("DATEDIM")
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "parquet")
	v.SetDefault("output.path", "")
	v.SetDefault("output.postgres.dsn", "")
	v.SetDefault("output.postgres.table", "datedimension")
	v.SetDefault("generate.holidayNames", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
