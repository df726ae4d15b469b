package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the built-in defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "parquet" {
		t.Errorf("expected default format parquet, got %s", cfg.Output.Format)
	}
	if cfg.Output.Postgres.Table != "datedimension" {
		t.Errorf("expected default table datedimension, got %s", cfg.Output.Postgres.Table)
	}
	if cfg.Generate.HolidayNames {
		t.Error("expected holiday names disabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("expected info/json logging defaults, got %s/%s",
			cfg.Logging.Level, cfg.Logging.Format)
	}
}

// TestLoad_MissingFileUsesDefaults verifies the config file is optional.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	// Run from an empty directory so no stray config.yaml is picked up.
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != "parquet" {
		t.Errorf("expected default format parquet, got %s", cfg.Output.Format)
	}
}

// TestLoad_FromFile verifies values from an explicit config file override
// the defaults while unset keys keep theirs.
func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output:
  format: csv
  path: /tmp/dates.csv
  postgres:
    dsn: postgres://localhost/dates
generate:
  holidayNames: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output.Format != "csv" {
		t.Errorf("expected format csv, got %s", cfg.Output.Format)
	}
	if cfg.Output.Path != "/tmp/dates.csv" {
		t.Errorf("expected path /tmp/dates.csv, got %s", cfg.Output.Path)
	}
	if cfg.Output.Postgres.DSN != "postgres://localhost/dates" {
		t.Errorf("unexpected dsn %s", cfg.Output.Postgres.DSN)
	}
	if !cfg.Generate.HolidayNames {
		t.Error("expected holiday names enabled")
	}
	// Unset keys keep their defaults.
	if cfg.Output.Postgres.Table != "datedimension" {
		t.Errorf("expected default table datedimension, got %s", cfg.Output.Postgres.Table)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logging.Level)
	}
}

// TestLoad_InvalidFile verifies malformed YAML is rejected.
func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	return func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	}
}
