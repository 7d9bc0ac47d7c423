package performance

import (
	"fmt"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
	"go.uber.org/zap"
)

// Periods per year for the usual return frequencies.
const (
	TradingDaysPerYear  = 252
	CalendarDaysPerYear = 365
	WeeksPerYear        = 52
	MonthsPerYear       = 12
)

// Period is any record carrying the fractional return of one period.
type Period interface {
	AbsoluteReturn() fixed.Point
}

// Series is an immutable, non-empty sequence of period returns r_1..r_N,
// each strictly greater than -1.
type Series struct {
	returns []fixed.Point
}

func NewSeries(returns []fixed.Point) (Series, error) {
	if len(returns) == 0 {
		return Series{}, fmt.Errorf("%w: empty return series", ErrInvalidInput)
	}

	for i, r := range returns {
		if r.Lte(fixed.NegOne) {
			return Series{}, fmt.Errorf("%w: return %s at index %d is not greater than -1", ErrInvalidInput, r, i)
		}
	}

	series := Series{returns: make([]fixed.Point, len(returns))}
	copy(series.returns, returns)
	return series, nil
}

func NewSeriesFromPeriods[T Period](periods []T) (Series, error) {
	returns := make([]fixed.Point, len(periods))
	for i, p := range periods {
		returns[i] = p.AbsoluteReturn()
	}
	return NewSeries(returns)
}

func (s Series) Len() int { return len(s.returns) }

func (s Series) At(i int) fixed.Point { return s.returns[i] }

// Returns returns a copy of the underlying returns.
func (s Series) Returns() []fixed.Point {
	out := make([]fixed.Point, len(s.returns))
	copy(out, s.returns)
	return out
}

// Parameters scale per-period statistics to annual terms. RiskFreeReturn and
// MinimalAcceptableReturn are annual rates.
type Parameters struct {
	AnnualizedFactor        fixed.Point
	RiskFreeReturn          fixed.Point
	MinimalAcceptableReturn fixed.Point
}

func (p Parameters) Validate() error {
	if !p.AnnualizedFactor.IsPos() {
		return fmt.Errorf("%w: annualized factor %s must be positive", ErrInvalidInput, p.AnnualizedFactor)
	}
	return nil
}

func (p Parameters) periodRiskFree() fixed.Point {
	return p.RiskFreeReturn.Div(p.AnnualizedFactor)
}

func (p Parameters) periodMinimalAcceptable() fixed.Point {
	return p.MinimalAcceptableReturn.Div(p.AnnualizedFactor)
}

func (p Parameters) Fields() []zap.Field {
	return []zap.Field{
		zap.String("annualized_factor", p.AnnualizedFactor.String()),
		zap.String("risk_free_return", p.RiskFreeReturn.String()),
		zap.String("minimal_acceptable_return", p.MinimalAcceptableReturn.String()),
	}
}
