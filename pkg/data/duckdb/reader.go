package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/peter-kozarec/plutus/pkg/common"
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Reader loads period returns from duckdb. Returns are read as text so the
// decimal value is preserved exactly, whatever the column type.
type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open duckdb %q: %w", r.dataSourceName, err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
}

// LoadReturns reads <symbol>_returns(ts, ret) rows with ts in [from, to],
// oldest first. Each row becomes a period ending at ts and starting at the
// previous row's ts.
func (r *Reader) LoadReturns(ctx context.Context, symbol string, from, to time.Time, handler func(common.PeriodPerformance) error) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("invalid symbol %q", symbol)
	}

	query := fmt.Sprintf(`SELECT ts, CAST(ret AS VARCHAR) FROM %s_returns WHERE ts BETWEEN ? AND ? ORDER BY ts`, symbol)
	return r.load(ctx, handler, query, from, to)
}

// LoadReturnsCSV reads a CSV file with ts and ret columns.
func (r *Reader) LoadReturnsCSV(ctx context.Context, path string, handler func(common.PeriodPerformance) error) error {
	query := fmt.Sprintf(`SELECT CAST(ts AS TIMESTAMP), CAST(ret AS VARCHAR) FROM read_csv_auto('%s', all_varchar = true) ORDER BY 1`,
		strings.ReplaceAll(path, "'", "''"))
	return r.load(ctx, handler, query)
}

func (r *Reader) load(ctx context.Context, handler func(common.PeriodPerformance) error, query string, args ...any) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var start time.Time
	for rows.Next() {
		var (
			ts  time.Time
			ret string
		)
		if err := rows.Scan(&ts, &ret); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}

		value, err := fixed.FromString(strings.TrimSpace(ret))
		if err != nil {
			return fmt.Errorf("error parsing return at %s: %w", ts.Format(time.RFC3339), err)
		}

		period := common.PeriodPerformance{Start: start, End: ts, Return: value}
		if err := handler(period); err != nil {
			return fmt.Errorf("error processing return: %w", err)
		}
		start = ts
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
