package common

import (
	"math"
	"testing"
)

func TestMaxIndexFrom(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		start  int
		want   int
	}{
		{"global max after start", []float64{5, 1, 2, 9, 3}, 1, 3},
		{"start excludes earlier max", []float64{9, 1, 2, 3, 4}, 1, 4},
		{"ties keep lowest index", []float64{0, 7, 7, 7}, 0, 1},
		{"start at last index", []float64{1, 2, 3}, 2, 2},
		{"negative start clamps to zero", []float64{4, 1}, -3, 0},
		{"start out of range", []float64{1, 2}, 5, -1},
		{"empty values", []float64{}, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxIndexFrom(tt.values, tt.start); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParabolicRefineSymmetricPeak(t *testing.T) {
	// A symmetric profile refines to exactly the integer peak
	values := []float64{0.1, 0.5, 1.0, 0.5, 0.1}
	got := ParabolicRefine(values, 2)
	if got != 2.0 {
		t.Errorf("got %g, want exactly 2.0", got)
	}
}

func TestParabolicRefineAsymmetricPeak(t *testing.T) {
	// Shifted toward the larger neighbor, strictly within (p-1, p+1)
	values := []float64{0.0, 0.3, 1.0, 0.6, 0.0}
	got := ParabolicRefine(values, 2)

	if got <= 2.0 || got >= 3.0 {
		t.Fatalf("refined peak %g not shifted toward larger neighbor in (2, 3)", got)
	}

	// offset = (0.3 - 0.6) / (2 * (0.3 - 2.0 + 0.6)) = 3/22
	want := 2.0 + 3.0/22.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %g, want %g", got, want)
	}
}

func TestParabolicRefineEdges(t *testing.T) {
	values := []float64{1.0, 0.5, 0.2, 0.9}

	if got := ParabolicRefine(values, 0); got != 0.0 {
		t.Errorf("first index: got %g, want 0", got)
	}
	if got := ParabolicRefine(values, 3); got != 3.0 {
		t.Errorf("last index: got %g, want 3", got)
	}
}

func TestParabolicRefineFlatProfile(t *testing.T) {
	// Zero denominator must not divide; the integer peak is kept
	values := []float64{0.5, 0.5, 0.5, 0.5}
	got := ParabolicRefine(values, 2)

	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("flat profile produced non-finite refinement %g", got)
	}
	if got != 2.0 {
		t.Errorf("got %g, want 2.0", got)
	}
}
