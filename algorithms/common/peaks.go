package common

import (
	"math"
)

// parabolicDenominatorFloor guards the interpolation against flat or
// degenerate profiles where the denominator collapses toward zero.
const parabolicDenominatorFloor = 1e-12

// MaxIndexFrom returns the index of the maximum value at or after start.
// Ties keep the first (lowest) index encountered. Returns -1 when start is
// out of range.
func MaxIndexFrom(values []float64, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(values) {
		return -1
	}

	maxIdx := start
	maxVal := values[start]

	for i := start + 1; i < len(values); i++ {
		if values[i] > maxVal {
			maxVal = values[i]
			maxIdx = i
		}
	}

	return maxIdx
}

// ParabolicRefine refines an integer peak position to sub-sample precision
// by fitting a parabola through the peak and its two neighbors:
//
//	offset = (y[p-1] - y[p+1]) / (2 * (y[p-1] - 2*y[p] + y[p+1]))
//
// Peaks at the first or last index have no second neighbor and are returned
// unrefined, as are peaks whose denominator is too close to zero.
func ParabolicRefine(values []float64, peak int) float64 {
	if peak <= 0 || peak >= len(values)-1 {
		return float64(peak)
	}

	left := values[peak-1]
	center := values[peak]
	right := values[peak+1]

	denominator := 2.0 * (left - 2.0*center + right)
	if math.Abs(denominator) < parabolicDenominatorFloor {
		return float64(peak)
	}

	return float64(peak) + (left-right)/denominator
}
