package performance

import (
	"fmt"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
	"go.uber.org/zap"
)

// Report is the complete performance summary of one return series. It is
// computed eagerly by NewReport and never changes afterwards, so a Report
// may be shared between goroutines freely.
type Report struct {
	params                 Parameters
	sharpeRatio            Ratio
	sortinoRatio           Ratio
	cumulativePerformances []fixed.Point
	maximumDrawdown        fixed.Point
	annualReturn           fixed.Point
	longestDrawdown        DrawdownWindow
}

func NewReport(series Series, params Parameters) (report Report, err error) {
	if err := params.Validate(); err != nil {
		return Report{}, err
	}
	if series.Len() == 0 {
		return Report{}, fmt.Errorf("%w: empty return series", ErrInvalidInput)
	}

	// Intermediate sums and ratios of extreme series can still leave the
	// decimal range after the path itself fit.
	defer func() {
		if r := recover(); r != nil {
			report, err = Report{}, fmt.Errorf("%w: %v", ErrOverflow, r)
		}
	}()

	path, err := CumulativeValues(series.returns)
	if err != nil {
		return Report{}, err
	}

	annualReturn, err := AnnualReturn(path, params.AnnualizedFactor)
	if err != nil {
		return Report{}, err
	}

	return Report{
		params:                 params,
		sharpeRatio:            SharpeRatio(series.returns, params),
		sortinoRatio:           SortinoRatio(series.returns, params),
		cumulativePerformances: path,
		maximumDrawdown:        MaxDrawdown(path),
		annualReturn:           annualReturn,
		longestDrawdown:        LongestDrawdown(path),
	}, nil
}

func NewReportFromReturns(returns []fixed.Point, params Parameters) (Report, error) {
	series, err := NewSeries(returns)
	if err != nil {
		return Report{}, err
	}
	return NewReport(series, params)
}

func NewReportFromPeriods[T Period](periods []T, params Parameters) (Report, error) {
	series, err := NewSeriesFromPeriods(periods)
	if err != nil {
		return Report{}, err
	}
	return NewReport(series, params)
}

func (r Report) Parameters() Parameters { return r.params }
func (r Report) SharpeRatio() Ratio     { return r.sharpeRatio }
func (r Report) SortinoRatio() Ratio    { return r.sortinoRatio }

// CumulativePerformances returns a copy of the value path, cum[0] = 1.
func (r Report) CumulativePerformances() []fixed.Point {
	out := make([]fixed.Point, len(r.cumulativePerformances))
	copy(out, r.cumulativePerformances)
	return out
}

func (r Report) FinalValue() fixed.Point {
	if len(r.cumulativePerformances) == 0 {
		return fixed.Zero
	}
	return r.cumulativePerformances[len(r.cumulativePerformances)-1]
}

func (r Report) Periods() int {
	if len(r.cumulativePerformances) == 0 {
		return 0
	}
	return len(r.cumulativePerformances) - 1
}

func (r Report) MaximumDrawdown() fixed.Point    { return r.maximumDrawdown }
func (r Report) AnnualReturn() fixed.Point       { return r.annualReturn }
func (r Report) LongestDrawdownPeriod() int      { return r.longestDrawdown.Periods }
func (r Report) LongestDrawdown() DrawdownWindow { return r.longestDrawdown }

func (r Report) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("periods", r.Periods()),
		zap.String("final_value", r.FinalValue().String()),
		zap.String("annual_return", r.annualReturn.String()),
		zap.String("maximum_drawdown", r.maximumDrawdown.String()),
		zap.Int("longest_drawdown_period", r.longestDrawdown.Periods),
		zap.Stringer("sharpe_ratio", r.sharpeRatio),
		zap.Stringer("sortino_ratio", r.sortinoRatio),
	}
}

func (r Report) Print(logger *zap.Logger) {
	logger.Info("performance report", r.Fields()...)
	logger.Debug("annualization parameters", r.params.Fields()...)
	if r.longestDrawdown.Periods > 0 {
		logger.Debug("longest drawdown", r.longestDrawdown.Fields()...)
	}
}
