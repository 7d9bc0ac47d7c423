package source

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/peter-kozarec/plutus/internal/cfg"
	"github.com/peter-kozarec/plutus/pkg/common"
	"github.com/peter-kozarec/plutus/pkg/data/db/psql"
	"github.com/peter-kozarec/plutus/pkg/data/duckdb"
	"github.com/peter-kozarec/plutus/pkg/data/mapper"
	"github.com/peter-kozarec/plutus/pkg/performance"
	"go.uber.org/zap"
)

// Loader turns configured symbols into evaluation jobs. For the csv and
// binary kinds the DSN is a directory holding <symbol>.csv or <symbol>.bin.
type Loader struct {
	logger *zap.Logger
	config cfg.Config
	db     *duckdb.Reader
	pg     *sql.DB
}

func NewLoader(logger *zap.Logger, config cfg.Config) *Loader {
	return &Loader{
		logger: logger,
		config: config,
	}
}

func (l *Loader) Open(ctx context.Context) error {
	switch l.config.Source.Kind {
	case cfg.SourcePostgres:
		pg, err := psql.Connect(ctx, l.config.Source.DSN)
		if err != nil {
			return fmt.Errorf("unable to connect to postgres: %w", err)
		}
		l.pg = pg
		return nil
	case cfg.SourceDuckDB:
		l.db = duckdb.NewReader(l.config.Source.DSN)
	case cfg.SourceCSV:
		l.db = duckdb.NewReader("")
	default:
		return nil
	}
	return l.db.Connect()
}

func (l *Loader) Close() {
	if l.db != nil {
		l.db.Close()
	}
	if l.pg != nil {
		_ = l.pg.Close()
	}
}

func (l *Loader) Path(symbol string) string {
	switch l.config.Source.Kind {
	case cfg.SourceCSV:
		return filepath.Join(l.config.Source.DSN, symbol+".csv")
	case cfg.SourceBinary:
		return filepath.Join(l.config.Source.DSN, symbol+".bin")
	}
	return l.config.Source.DSN
}

// Load returns the periods of symbol ending within [From, To].
func (l *Loader) Load(ctx context.Context, symbol string) ([]common.PeriodPerformance, error) {
	var periods []common.PeriodPerformance
	collect := func(period common.PeriodPerformance) error {
		if period.End.Before(l.config.From) || period.End.After(l.config.To) {
			return nil
		}
		periods = append(periods, period)
		return nil
	}

	var err error
	switch l.config.Source.Kind {
	case cfg.SourceDuckDB:
		err = l.db.LoadReturns(ctx, symbol, l.config.From, l.config.To, collect)
	case cfg.SourcePostgres:
		err = psql.LoadReturns(ctx, l.pg, symbol, l.config.From, l.config.To, collect)
	case cfg.SourceCSV:
		err = l.db.LoadReturnsCSV(ctx, l.Path(symbol), collect)
	case cfg.SourceBinary:
		r := mapper.NewReader(l.Path(symbol))
		if err = r.Open(); err == nil {
			err = r.ReadAll(collect)
			r.Close()
		}
	default:
		err = fmt.Errorf("unknown source kind %q", l.config.Source.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", symbol, err)
	}

	l.logger.Debug("returns loaded",
		zap.String("symbol", symbol),
		zap.String("source", l.config.Source.Kind),
		zap.Int("periods", len(periods)))

	return periods, nil
}

// Jobs loads every configured symbol. Symbols that fail to load are left
// out and their errors returned alongside the jobs that did load.
func (l *Loader) Jobs(ctx context.Context) ([]performance.Job, []error) {
	jobs := make([]performance.Job, 0, len(l.config.Symbols))
	var errs []error

	for _, symbol := range l.config.Symbols {
		periods, err := l.Load(ctx, symbol)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		jobs = append(jobs, performance.Job{Symbol: symbol, Periods: periods})
	}

	return jobs, errs
}
