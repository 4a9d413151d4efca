//-------------------------------------------------------------------------
//
// martgen - Marketing Data Mart Generator
//
// Copyright (c) 2025 - 2026, Sparkline Data
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for martgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/sparkline-data/martgen/internal/mart"
)

// DateLayout is the layout for dates in configuration and flags.
const DateLayout = "2006-01-02"

// Config holds all configuration for martgen.
type Config struct {
	// OutputDir is the directory the star schema CSV files are written to.
	OutputDir string `mapstructure:"output_dir"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Enrich holds configuration for the enrich subcommand.
	Enrich EnrichConfig `mapstructure:"enrich"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// StartDate is the first day of the date dimension (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`

	// Days is the number of calendar days in the date dimension.
	Days int `mapstructure:"days"`

	// Seed seeds the random draws for reproducible output.
	// Zero means seed from the current time (non-reproducible).
	Seed uint64 `mapstructure:"seed"`
}

// EnrichConfig holds configuration for the enrichment stage.
type EnrichConfig struct {
	// InputDir is the directory holding the four star schema CSV files.
	// Empty means use OutputDir.
	InputDir string `mapstructure:"input_dir"`

	// OutputFile is the master CSV file name. Relative paths are resolved
	// against InputDir.
	OutputFile string `mapstructure:"output_file"`
}

// DefaultConfig returns a Config with default values. The defaults
// reproduce the canonical dataset: 15 months of daily grain starting
// 2023-01-01, written to ./docs.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "docs",
		LogLevel:  "info",
		Generate: GenerateConfig{
			StartDate: mart.DefaultStartDate.Format(DateLayout),
			Days:      mart.DefaultDays,
			Seed:      0,
		},
		Enrich: EnrichConfig{
			OutputFile: "marketing_analytics_master.csv",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./martgen.yaml
// 3. ~/.config/martgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("martgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "martgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// StartTime parses the configured start date.
func (c *Config) StartTime() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.Generate.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q: %w", c.Generate.StartDate, err)
	}
	return t, nil
}

// EnrichInputDir returns the directory the enrichment stage reads from,
// falling back to OutputDir when input_dir is not set.
func (c *Config) EnrichInputDir() string {
	if c.Enrich.InputDir != "" {
		return c.Enrich.InputDir
	}
	return c.OutputDir
}

// EnrichOutputPath returns the full path of the master CSV file.
func (c *Config) EnrichOutputPath() string {
	if filepath.IsAbs(c.Enrich.OutputFile) {
		return c.Enrich.OutputFile
	}
	return filepath.Join(c.EnrichInputDir(), c.Enrich.OutputFile)
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if _, err := c.StartTime(); err != nil {
		return err
	}
	if c.Generate.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

// ValidateEnrich checks configuration required for the enrich command.
func (c *Config) ValidateEnrich() error {
	if c.EnrichInputDir() == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.Enrich.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	return nil
}
