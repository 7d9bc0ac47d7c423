package fixed

func Sum(points []Point) Point {
	sum := Zero
	for _, point := range points {
		sum = sum.Add(point)
	}
	return sum
}

func Mean(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}
	return Sum(points).DivInt(len(points))
}

// SampleVariance uses the N-1 divisor. Deviations below 1e-10 square to
// less than the decimal resolution, so prefer SampleDispersion when the
// result feeds a ratio.
func SampleVariance(points []Point, mean Point) Point {
	if len(points) <= 1 {
		return Zero
	}

	sum := Zero
	for _, point := range points {
		diff := point.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}

	return sum.DivInt(len(points) - 1)
}

// Dispersion is a root mean square held as Peak * Unit. Peak is the largest
// absolute deviation and Unit lies in [1/sqrt(n), 1], so deviations far
// below the decimal resolution keep their precision.
type Dispersion struct {
	Peak Point
	Unit Point
}

func (d Dispersion) IsZero() bool { return d.Peak.IsZero() }

// Value is Peak * Unit. It rounds to zero once the dispersion drops below
// 1e-19 even though IsZero is false.
func (d Dispersion) Value() Point { return d.Peak.Mul(d.Unit) }

func rootMeanSquare(deviations []Point, divisor int) Dispersion {
	peak := Zero
	for _, deviation := range deviations {
		if abs := deviation.Abs(); abs.Gt(peak) {
			peak = abs
		}
	}
	if peak.IsZero() || divisor <= 0 {
		return Dispersion{Peak: Zero, Unit: Zero}
	}

	sum := Zero
	for _, deviation := range deviations {
		q := deviation.Div(peak)
		sum = sum.Add(q.Mul(q))
	}

	return Dispersion{Peak: peak, Unit: sum.DivInt(divisor).Sqrt()}
}

// SampleDispersion is the N-1 sample standard deviation as a Dispersion.
func SampleDispersion(points []Point, mean Point) Dispersion {
	if len(points) <= 1 {
		return Dispersion{Peak: Zero, Unit: Zero}
	}

	deviations := make([]Point, len(points))
	for i, point := range points {
		deviations[i] = point.Sub(mean)
	}
	return rootMeanSquare(deviations, len(points)-1)
}

func SampleStdDev(points []Point, mean Point) Point {
	return SampleDispersion(points, mean).Value()
}

// ShortfallDispersion is the root mean square of the shortfall below
// threshold. Points at or above the threshold contribute zero but still
// count in the divisor.
func ShortfallDispersion(points []Point, threshold Point) Dispersion {
	deviations := make([]Point, 0, len(points))
	for _, point := range points {
		if point.Lt(threshold) {
			deviations = append(deviations, point.Sub(threshold))
		}
	}
	return rootMeanSquare(deviations, len(points))
}

func ShortfallDev(points []Point, threshold Point) Point {
	return ShortfallDispersion(points, threshold).Value()
}

// AnyBelow reports whether some point is strictly below threshold.
func AnyBelow(points []Point, threshold Point) bool {
	for _, point := range points {
		if point.Lt(threshold) {
			return true
		}
	}
	return false
}

func AllZero(points []Point) bool {
	for _, point := range points {
		if !point.IsZero() {
			return false
		}
	}
	return true
}
