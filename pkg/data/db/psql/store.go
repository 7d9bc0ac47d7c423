package psql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/peter-kozarec/plutus/pkg/common"
	"github.com/peter-kozarec/plutus/pkg/performance"
	"github.com/peter-kozarec/plutus/pkg/utility"
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := dbConn.PingContext(ctx); err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	return dbConn, nil
}

// LoadReturns reads returns(symbol, ts, ret) rows of symbol with ts in
// [from, to], oldest first, chaining period boundaries like the other sources.
func LoadReturns(ctx context.Context, db *sql.DB, symbol string, from, to time.Time, handler func(common.PeriodPerformance) error) error {
	query := `
	SELECT ts, ret::text
	FROM returns
	WHERE symbol = $1 AND ts BETWEEN $2 AND $3
	ORDER BY ts;
	`

	rows, err := db.QueryContext(ctx, query, symbol, from, to)
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

		if err := handler(common.PeriodPerformance{Start: start, End: ts, Return: value}); err != nil {
			return fmt.Errorf("error processing return: %w", err)
		}
		start = ts
	}

	return rows.Err()
}

func InsertReport(ctx context.Context, db *sql.DB, runID utility.ExecutionID, symbol string, report performance.Report) error {
	query := `
	INSERT INTO performance_reports (
		run_id,
		symbol,
		periods,
		final_value,
		annual_return,
		sharpe_ratio,
		sortino_ratio,
		maximum_drawdown,
		longest_drawdown_period,
		annualized_factor,
		risk_free_return,
		minimal_acceptable_return
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (run_id, symbol) DO NOTHING;
	`

	params := report.Parameters()
	_, err := db.ExecContext(
		ctx,
		query,
		runID.String(),
		symbol,
		report.Periods(),
		report.FinalValue().String(),
		report.AnnualReturn().String(),
		NumericRatio(report.SharpeRatio()),
		NumericRatio(report.SortinoRatio()),
		report.MaximumDrawdown().String(),
		report.LongestDrawdownPeriod(),
		params.AnnualizedFactor.String(),
		params.RiskFreeReturn.String(),
		params.MinimalAcceptableReturn.String(),
	)

	return err
}

// NumericRatio renders r as a postgres numeric literal.
func NumericRatio(r performance.Ratio) string {
	if r.IsInf() {
		return "Infinity"
	}
	return r.String()
}
