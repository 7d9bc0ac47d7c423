package fixed

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Point is an unsafe wrapper around decimal implementation. Caller must make sure the calculations
// are correct and will not result in an error state, otherwise it will panic. Use the Checked
// variants where the operands come from outside and the error has to be reported.
type Point struct {
	v decimal.Decimal
}

func FromInt(value int, scale int) Point {
	return Point{must(decimal.New(int64(value), scale))}
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

func FromFloat64(value float64) Point {
	return Point{must(decimal.NewFromFloat64(value))}
}

// FromString parses an exact decimal such as "0.0125" or "-3". Exponent
// notation is not accepted.
func FromString(value string) (Point, error) {
	d, err := decimal.Parse(value)
	if err != nil {
		return Point{}, fmt.Errorf("unable to parse decimal %q: %w", value, err)
	}
	return Point{d}, nil
}

func MustFromString(value string) Point {
	p, err := FromString(value)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }

func (p Point) Abs() Point { return Point{p.v.Abs()} }
func (p Point) Neg() Point { return Point{p.v.Neg()} }

func (p Point) Add(o Point) Point { return Point{must(p.v.Add(o.v))} }
func (p Point) Sub(o Point) Point { return Point{must(p.v.Sub(o.v))} }
func (p Point) Mul(o Point) Point { return Point{must(p.v.Mul(o.v))} }
func (p Point) Div(o Point) Point { return Point{must(p.v.Quo(o.v))} }

func (p Point) MulInt(o int) Point { return Point{must(p.v.Mul(decimal.MustNew(int64(o), 0)))} }
func (p Point) DivInt(o int) Point { return Point{must(p.v.Quo(decimal.MustNew(int64(o), 0)))} }

func (p Point) Cmp(o Point) int  { return p.v.Cmp(o.v) }
func (p Point) Eq(o Point) bool  { return p.v.Cmp(o.v) == 0 }
func (p Point) Gt(o Point) bool  { return p.v.Cmp(o.v) > 0 }
func (p Point) Lt(o Point) bool  { return p.v.Cmp(o.v) < 0 }
func (p Point) Gte(o Point) bool { return p.v.Cmp(o.v) >= 0 }
func (p Point) Lte(o Point) bool { return p.v.Cmp(o.v) <= 0 }

func (p Point) Sign() int               { return p.v.Sign() }
func (p Point) IsZero() bool            { return p.v.IsZero() }
func (p Point) IsNeg() bool             { return p.v.IsNeg() }
func (p Point) IsPos() bool             { return p.v.IsPos() }
func (p Point) Rescale(scale int) Point { return Point{p.v.Rescale(scale)} }

// Coef returns the signed coefficient and scale of p, so that
// p = coef * 10^-scale. ok is false if the coefficient overflows int64.
func (p Point) Coef() (coef int64, scale int, ok bool) {
	c := p.v.Coef()
	if c > math.MaxInt64 {
		return 0, 0, false
	}
	coef = int64(c)
	if p.v.IsNeg() {
		coef = -coef
	}
	return coef, p.v.Scale(), true
}

func (p Point) Pow(o Point) Point { return Point{must(p.v.Pow(o.v))} }
func (p Point) Sqrt() Point       { return Point{must(p.v.Sqrt())} }

// CheckedAdd is Add reporting overflow as an error.
func (p Point) CheckedAdd(o Point) (Point, error) {
	d, err := p.v.Add(o.v)
	if err != nil {
		return Point{}, fmt.Errorf("unable to add %s and %s: %w", p, o, err)
	}
	return Point{d}, nil
}

// CheckedMul is Mul reporting overflow as an error.
func (p Point) CheckedMul(o Point) (Point, error) {
	d, err := p.v.Mul(o.v)
	if err != nil {
		return Point{}, fmt.Errorf("unable to multiply %s by %s: %w", p, o, err)
	}
	return Point{d}, nil
}

// CheckedDiv is Div reporting division by zero and overflow as an error.
func (p Point) CheckedDiv(o Point) (Point, error) {
	d, err := p.v.Quo(o.v)
	if err != nil {
		return Point{}, fmt.Errorf("unable to divide %s by %s: %w", p, o, err)
	}
	return Point{d}, nil
}

// CheckedPow is Pow reporting an undefined power (e.g. a fractional
// exponent of a negative base) as an error.
func (p Point) CheckedPow(o Point) (Point, error) {
	d, err := p.v.Pow(o.v)
	if err != nil {
		return Point{}, fmt.Errorf("unable to raise %s to %s: %w", p, o, err)
	}
	return Point{d}, nil
}

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(text []byte) error {
	d, err := decimal.Parse(string(text))
	if err != nil {
		return fmt.Errorf("unable to parse decimal %q: %w", text, err)
	}
	p.v = d
	return nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
