package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "recon.yaml"

// Config represents the top-level recon.yaml configuration.
type Config struct {
	Bank         BankConfig         `yaml:"bank"`
	Disbursement DisbursementConfig `yaml:"disbursement"`
	Match        MatchConfig        `yaml:"match"`
	Output       OutputConfig       `yaml:"output"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// BankConfig describes the bank statement schema.
type BankConfig struct {
	DescriptionColumn string   `yaml:"description_column"`
	DateColumn        string   `yaml:"date_column"`
	AmountColumn      string   `yaml:"amount_column"`
	SkipRows          int      `yaml:"skip_rows,omitempty"`
	Exclude           []string `yaml:"exclude,omitempty"` // description substrings to drop
}

// DisbursementConfig describes the disbursement report schema.
type DisbursementConfig struct {
	NarrationColumn string   `yaml:"narration_column"`
	DateColumn      string   `yaml:"date_column"`
	LoanColumn      string   `yaml:"loan_column"`
	AmountColumn    string   `yaml:"amount_column"`
	SkipRows        int      `yaml:"skip_rows,omitempty"`
	Exclude         []string `yaml:"exclude,omitempty"` // narration substrings to drop
}

// MatchConfig tunes the matching rule.
type MatchConfig struct {
	// DateToleranceDays is the widest allowed gap between the bank date and
	// the disbursement effective date. Negative disables the window.
	DateToleranceDays int `yaml:"date_tolerance_days"`
}

// OutputConfig controls report serialization.
type OutputConfig struct {
	Format string `yaml:"format"` // "csv" or "xlsx"
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a recon.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the schema of the standard bank statement and disbursement
// report layouts.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			DescriptionColumn: "Description",
			DateColumn:        "Date",
			AmountColumn:      "Amount",
			Exclude:           []string{"DEBIT TRANSFERST-"},
		},
		Disbursement: DisbursementConfig{
			NarrationColumn: "TRANSACTION NARRATION",
			DateColumn:      "EFFECTIVE DATE",
			LoanColumn:      "LOAN NUMBER",
			AmountColumn:    "AMOUNT DISBURSED",
			SkipRows:        6,
			Exclude:         []string{"cash", "nan"},
		},
		Match: MatchConfig{
			DateToleranceDays: 7,
		},
		Output: OutputConfig{
			Format: "xlsx",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
