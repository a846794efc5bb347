package windowing

import (
	"fmt"
)

// Framer slices a signal into fixed-size frames at regular step offsets
// 0, S, 2S, ... Frames overlap because the step is required to be smaller
// than the frame size. Framer holds no iteration state: frames are addressed
// by index, so a pass can be restarted or repeated at any time.
type Framer struct {
	signal []float64
	size   int
	step   int
}

// NewFramer creates a framer over the given signal. The signal is not
// copied; the caller must keep it unmodified for the framer's lifetime.
func NewFramer(signal []float64, size, step int) (*Framer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("frame size must be positive, got %d", size)
	}
	if step <= 0 {
		return nil, fmt.Errorf("step size must be positive, got %d", step)
	}
	if step >= size {
		return nil, fmt.Errorf("step size (%d) must be smaller than frame size (%d) for overlap", step, size)
	}

	return &Framer{
		signal: signal,
		size:   size,
		step:   step,
	}, nil
}

// Count returns the number of frames the signal yields:
// floor((len(signal) - size) / step), clamped at zero for signals shorter
// than one frame. Knowing the count up front lets callers report progress
// fractions against a fixed denominator.
func (f *Framer) Count() int {
	n := (len(f.signal) - f.size) / f.step
	if n < 0 {
		return 0
	}
	return n
}

// Frame returns an independent copy of frame i. Callers may mutate the
// returned slice without affecting the underlying signal.
func (f *Framer) Frame(i int) []float64 {
	if i < 0 || i >= f.Count() {
		return nil
	}

	offset := i * f.step
	frame := make([]float64, f.size)
	copy(frame, f.signal[offset:offset+f.size])
	return frame
}

// Size returns the frame size
func (f *Framer) Size() int {
	return f.size
}

// Step returns the step between frame offsets
func (f *Framer) Step() int {
	return f.step
}
