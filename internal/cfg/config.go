package cfg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/peter-kozarec/plutus/internal/dbg"
	"github.com/peter-kozarec/plutus/pkg/performance"
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
	"github.com/spf13/viper"
)

const (
	SourceDuckDB   = "duckdb"
	SourceCSV      = "csv"
	SourceBinary   = "binary"
	SourcePostgres = "postgres"
)

const DateLayout = "2006-01-02"

const EnvPrefix = "PLUTUS"

var ErrInvalidConfig = errors.New("invalid config")

type Source struct {
	Kind string
	DSN  string
}

type Config struct {
	Source     Source
	StoreDSN   string
	Symbols    []string
	From       time.Time
	To         time.Time
	Parameters performance.Parameters
	Workers    int
	LogEnv     string
}

// NewViper returns a viper instance with defaults applied, PLUTUS_ prefixed
// environment overrides enabled and configFile read when it is not empty.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("source.kind", SourceDuckDB)
	v.SetDefault("source.dsn", "")
	v.SetDefault("store.dsn", "")
	v.SetDefault("from", "1970-01-01")
	v.SetDefault("to", "2100-01-01")
	v.SetDefault("annualization.factor", strconv.Itoa(performance.TradingDaysPerYear))
	v.SetDefault("annualization.risk_free_return", "0")
	v.SetDefault("annualization.minimal_acceptable_return", "0")
	v.SetDefault("workers", 0)
	v.SetDefault("log.env", dbg.EnvDevelopment)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %q: %w", configFile, err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	var c Config

	c.Source = Source{
		Kind: strings.ToLower(v.GetString("source.kind")),
		DSN:  v.GetString("source.dsn"),
	}
	switch c.Source.Kind {
	case SourceDuckDB, SourceCSV, SourceBinary, SourcePostgres:
	default:
		return Config{}, fmt.Errorf("%w: unknown source kind %q", ErrInvalidConfig, c.Source.Kind)
	}

	c.StoreDSN = v.GetString("store.dsn")
	c.Symbols = v.GetStringSlice("symbols")

	var err error
	if c.From, err = parseDate(v, "from"); err != nil {
		return Config{}, err
	}
	if c.To, err = parseDate(v, "to"); err != nil {
		return Config{}, err
	}
	if c.To.Before(c.From) {
		return Config{}, fmt.Errorf("%w: to %s is before from %s", ErrInvalidConfig,
			c.To.Format(DateLayout), c.From.Format(DateLayout))
	}

	if c.Parameters.AnnualizedFactor, err = parsePoint(v, "annualization.factor"); err != nil {
		return Config{}, err
	}
	if !c.Parameters.AnnualizedFactor.IsPos() {
		return Config{}, fmt.Errorf("%w: annualization.factor must be positive, got %s", ErrInvalidConfig, c.Parameters.AnnualizedFactor)
	}
	if c.Parameters.RiskFreeReturn, err = parsePoint(v, "annualization.risk_free_return"); err != nil {
		return Config{}, err
	}
	if c.Parameters.MinimalAcceptableReturn, err = parsePoint(v, "annualization.minimal_acceptable_return"); err != nil {
		return Config{}, err
	}

	c.Workers = v.GetInt("workers")
	if c.Workers < 0 {
		return Config{}, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	c.LogEnv = v.GetString("log.env")

	return c, nil
}

func parseDate(v *viper.Viper, key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v.GetString(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return t, nil
}

func parsePoint(v *viper.Viper, key string) (fixed.Point, error) {
	p, err := fixed.FromString(v.GetString(key))
	if err != nil {
		return fixed.Zero, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return p, nil
}
