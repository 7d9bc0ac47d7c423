package performance

import "errors"

var (
	// ErrInvalidInput is returned for an empty series, a return at or below
	// -100% or a non-positive annualization factor.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain is returned when a metric is undefined for the given series,
	// e.g. annualizing a non-positive terminal value.
	ErrDomain = errors.New("domain error")

	// ErrOverflow is returned when a value of an otherwise valid series
	// leaves the 19 digit range of the decimal type, e.g. a value path
	// compounding past 1e19.
	ErrOverflow = errors.New("decimal overflow")
)
