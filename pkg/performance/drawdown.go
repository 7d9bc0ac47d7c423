package performance

import (
	"github.com/peter-kozarec/plutus/pkg/utility/fixed"
	"go.uber.org/zap"
)

// DrawdownWindow locates the longest drawdown found by LongestDrawdown.
// Periods is TroughIndex - PeakIndex; all fields are zero when the path
// never drops below a running peak.
type DrawdownWindow struct {
	PeakIndex   int
	TroughIndex int
	Periods     int
}

func (w DrawdownWindow) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("peak_index", w.PeakIndex),
		zap.Int("trough_index", w.TroughIndex),
		zap.Int("periods", w.Periods),
	}
}

// Drawdowns returns (cum[i] - peak[i]) / peak[i] for every point of the
// path, where peak[i] is the running maximum of cum[0..i].
func Drawdowns(path []fixed.Point) []fixed.Point {
	if len(path) == 0 {
		return nil
	}

	drawdowns := make([]fixed.Point, len(path))
	peak := path[0]
	for i, value := range path {
		if value.Gt(peak) {
			peak = value
		}
		drawdowns[i] = value.Sub(peak).Div(peak)
	}
	return drawdowns
}

// MaxDrawdown is the most negative drawdown of the path, or exactly zero if
// the path never falls below its running peak.
func MaxDrawdown(path []fixed.Point) fixed.Point {
	maxDrawdown := fixed.Zero
	for _, drawdown := range Drawdowns(path) {
		if drawdown.Lt(maxDrawdown) {
			maxDrawdown = drawdown
		}
	}
	return maxDrawdown
}

// LongestDrawdown scans the path once. The length is only re-evaluated when
// a new trough appears under the current peak, so a flat stretch below the
// peak does not extend it. A strictly longer window is required to replace
// the current one, so on ties the earliest window is kept.
func LongestDrawdown(path []fixed.Point) DrawdownWindow {
	var longest DrawdownWindow
	if len(path) == 0 {
		return longest
	}

	peak := path[0]
	peakIndex := 0
	trough := path[0]

	for i := 1; i < len(path); i++ {
		value := path[i]
		switch {
		case value.Gt(peak):
			peak = value
			peakIndex = i
			trough = value
		case value.Lt(trough):
			trough = value
			if i-peakIndex > longest.Periods {
				longest = DrawdownWindow{PeakIndex: peakIndex, TroughIndex: i, Periods: i - peakIndex}
			}
		}
	}

	return longest
}

func LongestDrawdownPeriod(path []fixed.Point) int {
	return LongestDrawdown(path).Periods
}
