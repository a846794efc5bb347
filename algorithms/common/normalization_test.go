package common

import (
	"math"
	"testing"
)

func TestMaxAbs(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		want   float64
	}{
		{"positive peak", []float64{0.1, 0.8, 0.3}, 0.8},
		{"negative peak", []float64{0.1, -0.9, 0.3}, 0.9},
		{"all zero", []float64{0, 0, 0}, 0},
		{"empty", []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxAbs(tt.signal); got != tt.want {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestPeakNormalize(t *testing.T) {
	signal := []float64{0.25, -0.5, 0.125}

	normalized, ok := PeakNormalize(signal)
	if !ok {
		t.Fatal("expected ok for non-zero signal")
	}

	want := []float64{0.5, -1.0, 0.25}
	for i := range normalized {
		if math.Abs(normalized[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, normalized[i], want[i])
		}
	}

	// Input untouched
	if signal[1] != -0.5 {
		t.Error("PeakNormalize mutated its input")
	}
}

func TestPeakNormalizeZeroSignal(t *testing.T) {
	if _, ok := PeakNormalize(make([]float64, 16)); ok {
		t.Error("expected ok=false for all-zero signal")
	}
}
