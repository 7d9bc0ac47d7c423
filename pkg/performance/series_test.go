package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/peter-kozarec/plutus/pkg/common"
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
)

func TestSeries_NewSeries(t *testing.T) {
	tests := []struct {
		name    string
		returns []fixed.Point
		wantErr error
	}{
		{"single period", points("0.01"), nil},
		{"mixed", points("0.1", "-0.05", "0.1"), nil},
		{"almost total loss", points("-0.9999"), nil},
		{"empty", nil, ErrInvalidInput},
		{"total loss", points("0.1", "-1"), ErrInvalidInput},
		{"beyond total loss", points("-1.5"), ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := NewSeries(tt.returns)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSeries() error = %v; want %v", err, tt.wantErr)
			}
			if err == nil && series.Len() != len(tt.returns) {
				t.Errorf("Len() = %d; want %d", series.Len(), len(tt.returns))
			}
		})
	}
}

func TestSeries_CopiesInput(t *testing.T) {
	returns := points("0.01", "0.02")
	series, err := NewSeries(returns)
	if err != nil {
		t.Fatalf("NewSeries() unexpected error: %v", err)
	}

	returns[0] = fixed.MustFromString("-0.5")
	if !series.At(0).Eq(fixed.MustFromString("0.01")) {
		t.Errorf("series changed with its input: At(0) = %v", series.At(0))
	}

	out := series.Returns()
	out[1] = fixed.Zero
	if !series.At(1).Eq(fixed.MustFromString("0.02")) {
		t.Errorf("series changed through Returns(): At(1) = %v", series.At(1))
	}
}

func TestSeries_NewSeriesFromPeriods(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periods := []common.PeriodPerformance{
		{Start: start, End: start.AddDate(0, 1, 0), Return: fixed.MustFromString("0.1")},
		{Start: start.AddDate(0, 1, 0), End: start.AddDate(0, 2, 0), Return: fixed.MustFromString("-0.05")},
	}

	series, err := NewSeriesFromPeriods(periods)
	if err != nil {
		t.Fatalf("NewSeriesFromPeriods() unexpected error: %v", err)
	}
	assertPointsEqual(t, points("0.1", "-0.05"), series.Returns(), "returns")

	_, err = NewSeriesFromPeriods([]common.IndexPerformance{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewSeriesFromPeriods(empty) error = %v; want %v", err, ErrInvalidInput)
	}

	_, err = NewSeriesFromPeriods([]common.IndexPerformance{{Symbol: "SPX", Return: fixed.NegOne}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewSeriesFromPeriods(-1) error = %v; want %v", err, ErrInvalidInput)
	}
}

func TestParameters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Parameters
		wantErr bool
	}{
		{"daily", params("252", "0.02", "0.07"), false},
		{"monthly", params("12", "0", "0"), false},
		{"fractional", params("0.5", "0", "0"), false},
		{"zero factor", params("0", "0", "0"), true},
		{"negative factor", params("-12", "0", "0"), true},
		{"zero value", Parameters{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v; want %v", err, ErrInvalidInput)
			}
		})
	}
}
