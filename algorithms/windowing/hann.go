package windowing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Hann represents a symmetric Hann window function. The coefficients taper a
// frame toward zero at both edges, reducing spectral leakage before
// correlation analysis.
type Hann struct {
	size         int
	coefficients []float64
}

// NewHann creates a new Hann window of the given size
func NewHann(size int) *Hann {
	h := &Hann{
		size: size,
	}
	h.generate()
	return h
}

// generate creates Hann window coefficients: 0.5 * (1 - cos(2*pi*i / (N-1)))
func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)

	if h.size == 1 {
		h.coefficients[0] = 0.0
		return
	}

	denominator := float64(h.size - 1)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
}

// Apply applies the window to a frame (creates new array).
// Returns nil if the frame length doesn't match the window size.
func (h *Hann) Apply(frame []float64) []float64 {
	if len(frame) != h.size {
		return nil
	}

	windowed := make([]float64, h.size)
	copy(windowed, frame)
	floats.Mul(windowed, h.coefficients)

	return windowed
}

// ApplyInPlace applies the window to a frame in-place
func (h *Hann) ApplyInPlace(frame []float64) error {
	if len(frame) != h.size {
		return fmt.Errorf("frame length (%d) doesn't match window size (%d)", len(frame), h.size)
	}

	floats.Mul(frame, h.coefficients)
	return nil
}

// Coefficients returns a copy of the window coefficients
func (h *Hann) Coefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// Size returns the window size
func (h *Hann) Size() int {
	return h.size
}
