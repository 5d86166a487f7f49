package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "cleanstaff")
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Display.Currency != "RM" {
		t.Fatalf("Currency = %q, want RM", cfg.Display.Currency)
	}
	if cfg.Business.JobRevenue != 100 || cfg.Business.WorkingDays != 26 {
		t.Fatalf("business defaults = %+v", cfg.Business)
	}
	if Exists() {
		t.Fatal("Exists() = true before any save")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Display.Currency = "USD"
	cfg.Business.TargetProfit = 45000
	cfg.Business.JobsPerDay = 3

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Display.Currency != "USD" {
		t.Fatalf("Currency = %q, want USD", loaded.Display.Currency)
	}
	if loaded.Business.TargetProfit != 45000 || loaded.Business.JobsPerDay != 3 {
		t.Fatalf("business = %+v", loaded.Business)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := withTempConfigDir(t)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[display]\ncurrency = \"SGD\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Display.Currency != "SGD" {
		t.Fatalf("Currency = %q, want SGD", cfg.Display.Currency)
	}
	// Unset sections keep their defaults.
	if cfg.Business.HostelMonthly != 300 {
		t.Fatalf("HostelMonthly = %v, want 300", cfg.Business.HostelMonthly)
	}
	if cfg.Display.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Display.Theme)
	}
}

func TestInputsRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	in := cfg.Inputs()
	in.CleanerPay = 40
	in.WorkingDays = 24

	cfg.SetInputs(in)
	if cfg.Inputs() != in {
		t.Fatalf("round trip mismatch: %+v vs %+v", cfg.Inputs(), in)
	}
}
