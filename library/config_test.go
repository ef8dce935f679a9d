package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Loan.PeriodDays != DefaultLoanPeriodDays || cfg.Loan.GraceDays != DefaultGraceDays {
		t.Fatalf("loan defaults wrong: %+v", cfg.Loan)
	}
	if cfg.Penalty.DailyRate != DefaultDailyRate || cfg.Penalty.MaxPenalty != DefaultMaxPenalty {
		t.Fatalf("penalty defaults wrong: %+v", cfg.Penalty)
	}
	if cfg.BooksPath() != filepath.Join("data", "books.csv") {
		t.Fatalf("books path wrong: %s", cfg.BooksPath())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	yaml := "data:\n  dir: /tmp/lib\npenalty:\n  daily_rate: 3.5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Data.Dir != "/tmp/lib" {
		t.Fatalf("data dir override lost: %s", cfg.Data.Dir)
	}
	if cfg.Penalty.DailyRate != 3.5 {
		t.Fatalf("daily rate override lost: %v", cfg.Penalty.DailyRate)
	}
	// Untouched keys keep their defaults.
	if cfg.Loan.PeriodDays != DefaultLoanPeriodDays {
		t.Fatalf("loan period changed unexpectedly: %d", cfg.Loan.PeriodDays)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LIBRARY_LOG_LEVEL", "debug")
	t.Setenv("LIBRARY_PENALTY_MAX", "50")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level override lost: %s", cfg.Log.Level)
	}
	if cfg.Penalty.MaxPenalty != 50 {
		t.Fatalf("penalty cap override lost: %v", cfg.Penalty.MaxPenalty)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("want validation error for bad log level")
	}
}

func TestLoadConfigMissingFileIsFine(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing config file should fall back to defaults: %v", err)
	}
}
