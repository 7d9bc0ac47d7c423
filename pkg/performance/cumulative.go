package performance

import (
	"fmt"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

// CumulativeValues compounds returns into a value path of length N+1
// starting at exactly 1. Every return must be greater than -1; NewSeries
// guarantees it, so the path is not re-validated here. A path leaving the
// decimal range fails with ErrOverflow.
func CumulativeValues(returns []fixed.Point) ([]fixed.Point, error) {
	path := make([]fixed.Point, len(returns)+1)
	path[0] = fixed.One
	for i, r := range returns {
		growth, err := fixed.One.CheckedAdd(r)
		if err != nil {
			return nil, fmt.Errorf("%w: period %d: %w", ErrOverflow, i, err)
		}
		if path[i+1], err = path[i].CheckedMul(growth); err != nil {
			return nil, fmt.Errorf("%w: period %d: %w", ErrOverflow, i, err)
		}
	}
	return path, nil
}
