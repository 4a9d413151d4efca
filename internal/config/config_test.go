package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.OutputDir != "docs" {
		t.Errorf("Expected OutputDir 'docs', got '%s'", cfg.OutputDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
	}

	// Generate defaults
	if cfg.Generate.StartDate != "2023-01-01" {
		t.Errorf("Expected Generate.StartDate '2023-01-01', got '%s'", cfg.Generate.StartDate)
	}
	if cfg.Generate.Days != 456 {
		t.Errorf("Expected Generate.Days 456, got %d", cfg.Generate.Days)
	}
	if cfg.Generate.Seed != 0 {
		t.Errorf("Expected Generate.Seed 0, got %d", cfg.Generate.Seed)
	}

	// Enrich defaults
	if cfg.Enrich.InputDir != "" {
		t.Errorf("Expected empty Enrich.InputDir, got '%s'", cfg.Enrich.InputDir)
	}
	if cfg.Enrich.OutputFile != "marketing_analytics_master.csv" {
		t.Errorf("Expected Enrich.OutputFile 'marketing_analytics_master.csv', got '%s'",
			cfg.Enrich.OutputFile)
	}
}

func TestStartTime(t *testing.T) {
	cfg := DefaultConfig()

	start, err := cfg.StartTime()
	if err != nil {
		t.Fatalf("StartTime failed: %v", err)
	}
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("Expected start %v, got %v", want, start)
	}

	cfg.Generate.StartDate = "01/02/2023"
	if _, err := cfg.StartTime(); err == nil {
		t.Error("Expected error for malformed start date, got nil")
	}
}

func TestEnrichPaths(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.EnrichInputDir(); got != "docs" {
		t.Errorf("Expected EnrichInputDir fallback 'docs', got '%s'", got)
	}
	if got := cfg.EnrichOutputPath(); got != filepath.Join("docs", "marketing_analytics_master.csv") {
		t.Errorf("Unexpected EnrichOutputPath: %s", got)
	}

	cfg.Enrich.InputDir = "data"
	if got := cfg.EnrichInputDir(); got != "data" {
		t.Errorf("Expected EnrichInputDir 'data', got '%s'", got)
	}
	if got := cfg.EnrichOutputPath(); got != filepath.Join("data", "marketing_analytics_master.csv") {
		t.Errorf("Unexpected EnrichOutputPath: %s", got)
	}

	abs := filepath.Join(t.TempDir(), "master.csv")
	cfg.Enrich.OutputFile = abs
	if got := cfg.EnrichOutputPath(); got != abs {
		t.Errorf("Expected absolute output path %s, got %s", abs, got)
	}
}

func TestValidateGenerate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "missing output dir",
			mutate:    func(c *Config) { c.OutputDir = "" },
			wantError: true,
		},
		{
			name:      "malformed start date",
			mutate:    func(c *Config) { c.Generate.StartDate = "not-a-date" },
			wantError: true,
		},
		{
			name:      "zero days",
			mutate:    func(c *Config) { c.Generate.Days = 0 },
			wantError: true,
		},
		{
			name:      "negative days",
			mutate:    func(c *Config) { c.Generate.Days = -7 },
			wantError: true,
		},
		{
			name:      "single day is valid",
			mutate:    func(c *Config) { c.Generate.Days = 1 },
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.ValidateGenerate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateEnrich(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name: "no input dir and no output dir",
			mutate: func(c *Config) {
				c.OutputDir = ""
				c.Enrich.InputDir = ""
			},
			wantError: true,
		},
		{
			name:      "missing output file",
			mutate:    func(c *Config) { c.Enrich.OutputFile = "" },
			wantError: true,
		},
		{
			name: "explicit input dir without output dir",
			mutate: func(c *Config) {
				c.OutputDir = ""
				c.Enrich.InputDir = "data"
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.ValidateEnrich()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "martgen.yaml")

	content := []byte(`
output_dir: /tmp/mart
log_level: debug
generate:
  start_date: "2024-06-01"
  days: 30
  seed: 42
enrich:
  input_dir: /tmp/other
  output_file: master.csv
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "/tmp/mart" {
		t.Errorf("Expected OutputDir '/tmp/mart', got '%s'", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.Generate.StartDate != "2024-06-01" {
		t.Errorf("Expected StartDate '2024-06-01', got '%s'", cfg.Generate.StartDate)
	}
	if cfg.Generate.Days != 30 {
		t.Errorf("Expected Days 30, got %d", cfg.Generate.Days)
	}
	if cfg.Generate.Seed != 42 {
		t.Errorf("Expected Seed 42, got %d", cfg.Generate.Seed)
	}
	if cfg.Enrich.InputDir != "/tmp/other" {
		t.Errorf("Expected Enrich.InputDir '/tmp/other', got '%s'", cfg.Enrich.InputDir)
	}
	if cfg.Enrich.OutputFile != "master.csv" {
		t.Errorf("Expected Enrich.OutputFile 'master.csv', got '%s'", cfg.Enrich.OutputFile)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// A nonexistent explicit config file is an error; an absent default
	// config file is not.
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for explicit missing config file")
	}
}
