package performance

import (
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

const infText = "+Inf"

// Ratio is a risk-adjusted ratio. It is either a finite decimal or positive
// infinity, which Sortino reports when no period falls below the threshold.
type Ratio struct {
	v   fixed.Point
	inf bool
}

var PosInf = Ratio{inf: true}

func FiniteRatio(v fixed.Point) Ratio { return Ratio{v: v} }

func (r Ratio) IsInf() bool { return r.inf }

// Value returns the finite value; ok is false for +Inf.
func (r Ratio) Value() (v fixed.Point, ok bool) {
	if r.inf {
		return fixed.Zero, false
	}
	return r.v, true
}

func (r Ratio) Eq(o Ratio) bool {
	if r.inf || o.inf {
		return r.inf == o.inf
	}
	return r.v.Eq(o.v)
}

func (r Ratio) String() string {
	if r.inf {
		return infText
	}
	return r.v.String()
}

func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Ratio) UnmarshalText(text []byte) error {
	if string(text) == infText {
		*r = PosInf
		return nil
	}
	var v fixed.Point
	if err := v.UnmarshalText(text); err != nil {
		return err
	}
	*r = FiniteRatio(v)
	return nil
}

// degenerate reports the series for which neither ratio is meaningful.
func degenerate(returns []fixed.Point) bool {
	return len(returns) <= 1 || fixed.AllZero(returns)
}

// SharpeRatio is sqrt(af) * (mean - rf/af) / stdev with the N-1 sample
// standard deviation. It is zero for a single period, an all-zero series or a
// series with zero variance.
func SharpeRatio(returns []fixed.Point, params Parameters) Ratio {
	if degenerate(returns) {
		return FiniteRatio(fixed.Zero)
	}

	mean := fixed.Mean(returns)
	dispersion := fixed.SampleDispersion(returns, mean)
	if dispersion.IsZero() {
		return FiniteRatio(fixed.Zero)
	}

	excess := mean.Sub(params.periodRiskFree())
	return scaledRatio(params.AnnualizedFactor, excess, dispersion)
}

// SortinoRatio is sqrt(af) * (mean - mar/af) / downside, where downside is
// the root mean square shortfall below mar/af over all periods. It is zero
// for a single period or an all-zero series, and +Inf exactly when no
// period falls below the threshold.
func SortinoRatio(returns []fixed.Point, params Parameters) Ratio {
	if degenerate(returns) {
		return FiniteRatio(fixed.Zero)
	}

	threshold := params.periodMinimalAcceptable()
	if !fixed.AnyBelow(returns, threshold) {
		return PosInf
	}

	excess := fixed.Mean(returns).Sub(threshold)
	return scaledRatio(params.AnnualizedFactor, excess, fixed.ShortfallDispersion(returns, threshold))
}

// scaledRatio divides by the peak and the unit of the dispersion in turn,
// so a dispersion below the decimal resolution never becomes a zero divisor.
func scaledRatio(annualizedFactor, excess fixed.Point, dispersion fixed.Dispersion) Ratio {
	return FiniteRatio(annualizedFactor.Sqrt().Mul(excess.Div(dispersion.Peak)).Div(dispersion.Unit))
}
