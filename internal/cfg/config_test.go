package cfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plutus.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestCfg_Defaults(t *testing.T) {
	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper() unexpected error: %v", err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if c.Source.Kind != SourceDuckDB {
		t.Errorf("Source.Kind = %q; want %q", c.Source.Kind, SourceDuckDB)
	}
	if !c.Parameters.AnnualizedFactor.Eq(fixed.FromInt(252, 0)) {
		t.Errorf("AnnualizedFactor = %v; want 252", c.Parameters.AnnualizedFactor)
	}
	if !c.Parameters.RiskFreeReturn.IsZero() || !c.Parameters.MinimalAcceptableReturn.IsZero() {
		t.Errorf("default returns = %v, %v; want 0, 0", c.Parameters.RiskFreeReturn, c.Parameters.MinimalAcceptableReturn)
	}
	if c.Workers != 0 {
		t.Errorf("Workers = %d; want 0", c.Workers)
	}
	if err := c.Parameters.Validate(); err != nil {
		t.Errorf("default parameters invalid: %v", err)
	}
}

func TestCfg_LoadFile(t *testing.T) {
	path := writeConfig(t, `
source:
  kind: CSV
  dsn: /data/returns
symbols: [EURUSD, GBPUSD]
from: "2023-01-01"
to: "2023-12-31"
annualization:
  factor: 365
  risk_free_return: "0.02"
  minimal_acceptable_return: "0.07"
workers: 4
log:
  env: production
`)
	v, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper() unexpected error: %v", err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if c.Source.Kind != SourceCSV || c.Source.DSN != "/data/returns" {
		t.Errorf("Source = %+v; want csv /data/returns", c.Source)
	}
	if len(c.Symbols) != 2 || c.Symbols[0] != "EURUSD" || c.Symbols[1] != "GBPUSD" {
		t.Errorf("Symbols = %v; want [EURUSD GBPUSD]", c.Symbols)
	}
	if want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC); !c.From.Equal(want) {
		t.Errorf("From = %v; want %v", c.From, want)
	}
	if !c.Parameters.RiskFreeReturn.Eq(fixed.MustFromString("0.02")) {
		t.Errorf("RiskFreeReturn = %v; want 0.02", c.Parameters.RiskFreeReturn)
	}
	if !c.Parameters.MinimalAcceptableReturn.Eq(fixed.MustFromString("0.07")) {
		t.Errorf("MinimalAcceptableReturn = %v; want 0.07", c.Parameters.MinimalAcceptableReturn)
	}
	if !c.Parameters.AnnualizedFactor.Eq(fixed.FromInt(365, 0)) {
		t.Errorf("AnnualizedFactor = %v; want 365", c.Parameters.AnnualizedFactor)
	}
	if c.Workers != 4 || c.LogEnv != "production" {
		t.Errorf("Workers, LogEnv = %d, %q; want 4, production", c.Workers, c.LogEnv)
	}
}

func TestCfg_FractionalFactor(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unquoted", "annualization:\n  factor: 365.25\n", "365.25"},
		{"quoted", "annualization:\n  factor: \"52.1775\"\n", "52.1775"},
		{"integer", "annualization:\n  factor: 12\n", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewViper(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("NewViper() unexpected error: %v", err)
			}
			c, err := Load(v)
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !c.Parameters.AnnualizedFactor.Eq(fixed.MustFromString(tt.want)) {
				t.Errorf("AnnualizedFactor = %v; want %s", c.Parameters.AnnualizedFactor, tt.want)
			}
		})
	}
}

func TestCfg_EnvOverride(t *testing.T) {
	t.Setenv("PLUTUS_SOURCE_KIND", "binary")
	t.Setenv("PLUTUS_ANNUALIZATION_RISK_FREE_RETURN", "0.01")

	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper() unexpected error: %v", err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if c.Source.Kind != SourceBinary {
		t.Errorf("Source.Kind = %q; want %q", c.Source.Kind, SourceBinary)
	}
	if !c.Parameters.RiskFreeReturn.Eq(fixed.MustFromString("0.01")) {
		t.Errorf("RiskFreeReturn = %v; want 0.01", c.Parameters.RiskFreeReturn)
	}
}

func TestCfg_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown source", "source:\n  kind: parquet\n"},
		{"bad date", "from: yesterday\n"},
		{"reversed range", "from: \"2024-01-01\"\nto: \"2023-01-01\"\n"},
		{"zero factor", "annualization:\n  factor: 0\n"},
		{"negative factor", "annualization:\n  factor: -252\n"},
		{"text factor", "annualization:\n  factor: daily\n"},
		{"bad decimal", "annualization:\n  risk_free_return: abc\n"},
		{"negative workers", "workers: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewViper(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("NewViper() unexpected error: %v", err)
			}
			if _, err := Load(v); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v; want %v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestCfg_MissingFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("NewViper() with missing file returned nil error")
	}
}
