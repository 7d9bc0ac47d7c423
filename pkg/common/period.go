package common

import (
	"time"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
	"go.uber.org/zap"
)

// PeriodPerformance is the fractional return of an investment over [Start, End).
type PeriodPerformance struct {
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Return fixed.Point `json:"return"`
}

func (p PeriodPerformance) AbsoluteReturn() fixed.Point { return p.Return }

func (p PeriodPerformance) Fields() []zap.Field {
	return []zap.Field{
		zap.Time("start", p.Start),
		zap.Time("end", p.End),
		zap.String("return", p.Return.String()),
	}
}

// IndexPerformance is the return of a benchmark index over one period.
type IndexPerformance struct {
	Symbol string      `json:"symbol"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Return fixed.Point `json:"return"`
}

func (p IndexPerformance) AbsoluteReturn() fixed.Point { return p.Return }

func (p IndexPerformance) Fields() []zap.Field {
	return []zap.Field{
		zap.String("symbol", p.Symbol),
		zap.Time("start", p.Start),
		zap.Time("end", p.End),
		zap.String("return", p.Return.String()),
	}
}
