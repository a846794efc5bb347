package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxAbs returns the maximum absolute value in the signal
func MaxAbs(signal []float64) float64 {
	maxVal := 0.0
	for _, v := range signal {
		if abs := math.Abs(v); abs > maxVal {
			maxVal = abs
		}
	}
	return maxVal
}

// PeakNormalize scales the signal so its maximum absolute value is 1.0
// (creates new array). Returns false for an all-zero signal, which has no
// meaningful peak to scale by.
func PeakNormalize(signal []float64) ([]float64, bool) {
	peak := MaxAbs(signal)
	if peak == 0 {
		return nil, false
	}

	normalized := make([]float64, len(signal))
	copy(normalized, signal)
	floats.Scale(1.0/peak, normalized)

	return normalized, true
}
