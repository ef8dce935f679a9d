package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultLoanPeriodDays is the standard borrow period.
	DefaultLoanPeriodDays = 14

	// DefaultGraceDays is the extra penalty-free days past the loan period.
	DefaultGraceDays = 0

	// DefaultDailyRate is the penalty charged per late weekday.
	DefaultDailyRate = 2.0

	// DefaultMaxPenalty caps the penalty for a single loan.
	DefaultMaxPenalty = 100.0
)

// Config is the root configuration structure.
type Config struct {
	Data    DataConfig      `koanf:"data"    validate:"required"`
	Loan    LoanConfig      `koanf:"loan"    validate:"required"`
	Penalty PenaltySettings `koanf:"penalty" validate:"required"`
	Log     LogConfig       `koanf:"log"     validate:"required"`
}

// DataConfig locates the flat table files.
type DataConfig struct {
	Dir          string `koanf:"dir"           validate:"required"`
	BooksFile    string `koanf:"books_file"    validate:"required"`
	StudentsFile string `koanf:"students_file" validate:"required"`
	LogsFile     string `koanf:"logs_file"     validate:"required"`
}

// LoanConfig contains borrow period settings.
type LoanConfig struct {
	PeriodDays int `koanf:"period_days" validate:"required,min=1"`
	GraceDays  int `koanf:"grace_days"  validate:"min=0"`
}

// PenaltySettings contains late-fee settings.
type PenaltySettings struct {
	DailyRate  float64 `koanf:"daily_rate" validate:"min=0"`
	MaxPenalty float64 `koanf:"max"        validate:"min=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// BooksPath returns the books table location.
func (c *Config) BooksPath() string {
	return filepath.Join(c.Data.Dir, c.Data.BooksFile)
}

// StudentsPath returns the students table location.
func (c *Config) StudentsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.StudentsFile)
}

// LogsPath returns the circulation log table location.
func (c *Config) LogsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.LogsFile)
}

// PenaltyConfig assembles the penalty calculation inputs.
func (c *Config) PenaltyConfig() PenaltyConfig {
	return PenaltyConfig{
		LoanPeriodDays: c.Loan.PeriodDays,
		GraceDays:      c.Loan.GraceDays,
		DailyRate:      c.Penalty.DailyRate,
		MaxPenalty:     c.Penalty.MaxPenalty,
	}
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"data.dir":           "data",
		"data.books_file":    "books.csv",
		"data.students_file": "students.csv",
		"data.logs_file":     "logs.csv",

		"loan.period_days": DefaultLoanPeriodDays,
		"loan.grace_days":  DefaultGraceDays,

		"penalty.daily_rate": DefaultDailyRate,
		"penalty.max":        DefaultMaxPenalty,

		"log.level": "info",
	}
}

// validate is the package-level validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration with the following precedence (highest
// to lowest):
//  1. Environment variables (LIBRARY_ prefix)
//  2. YAML config file at path, if it exists
//  3. Default values
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, path); err != nil {
		return nil, fmt.Errorf("loading config file %q: %w", path, err)
	}

	err := k.Load(env.Provider("LIBRARY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "LIBRARY_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists. Returns nil if
// the file doesn't exist, error only for read/parse failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
