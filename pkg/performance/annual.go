package performance

import (
	"fmt"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

// AnnualReturn is the geometric annualization cum[N]^(af/N) - 1 of a value
// path of length N+1.
func AnnualReturn(path []fixed.Point, annualizedFactor fixed.Point) (fixed.Point, error) {
	periods := len(path) - 1
	if periods < 1 {
		return fixed.Zero, fmt.Errorf("%w: value path of length %d has no periods", ErrInvalidInput, len(path))
	}

	final := path[periods]
	if !final.IsPos() {
		return fixed.Zero, fmt.Errorf("%w: cannot annualize non-positive terminal value %s", ErrDomain, final)
	}

	// A positive base always has a real power, so the only failure left is
	// a result outside the decimal range.
	growth, err := final.CheckedPow(annualizedFactor.DivInt(periods))
	if err != nil {
		return fixed.Zero, fmt.Errorf("%w: annual return of terminal value %s: %w", ErrOverflow, final, err)
	}

	return growth.Sub(fixed.One), nil
}
