package performance

import (
	"testing"

	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

const tolerance = "0.000000000001"

func points(values ...string) []fixed.Point {
	out := make([]fixed.Point, len(values))
	for i, v := range values {
		out[i] = fixed.MustFromString(v)
	}
	return out
}

func params(factor, riskFree, mar string) Parameters {
	return Parameters{
		AnnualizedFactor:        fixed.MustFromString(factor),
		RiskFreeReturn:          fixed.MustFromString(riskFree),
		MinimalAcceptableReturn: fixed.MustFromString(mar),
	}
}

func assertPointNear(t *testing.T, expected, actual fixed.Point, msg string) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	if diff.Gt(fixed.MustFromString(tolerance)) {
		t.Errorf("%s: expected %v, got %v (diff: %v)", msg, expected, actual, diff)
	}
}

func assertPointsEqual(t *testing.T, expected, actual []fixed.Point, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %d points, got %d", msg, len(expected), len(actual))
	}
	for i := range expected {
		if !expected[i].Eq(actual[i]) {
			t.Errorf("%s[%d]: expected %v, got %v", msg, i, expected[i], actual[i])
		}
	}
}

func assertFinite(t *testing.T, expected fixed.Point, actual Ratio, msg string) {
	t.Helper()
	v, ok := actual.Value()
	if !ok {
		t.Fatalf("%s: expected finite %v, got %v", msg, expected, actual)
	}
	assertPointNear(t, expected, v, msg)
}
