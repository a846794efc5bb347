package windowing

import (
	"testing"
)

func TestNewFramerValidation(t *testing.T) {
	signal := make([]float64, 100)

	tests := []struct {
		name string
		size int
		step int
	}{
		{"zero size", 0, 10},
		{"negative size", -1, 10},
		{"zero step", 64, 0},
		{"negative step", 64, -5},
		{"step equals size", 64, 64},
		{"step exceeds size", 64, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFramer(signal, tt.size, tt.step); err == nil {
				t.Errorf("expected error for size=%d step=%d", tt.size, tt.step)
			}
		})
	}
}

func TestFramerCount(t *testing.T) {
	tests := []struct {
		name      string
		signalLen int
		size      int
		step      int
		want      int
	}{
		{"shorter than one frame", 1000, 4096, 1024, 0},
		{"exactly one frame", 4096, 4096, 1024, 0},
		{"two frames worth", 8192, 4096, 1024, 4},
		{"empty signal", 0, 4096, 1024, 0},
		{"typical take", 66150, 4096, 1024, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFramer(make([]float64, tt.signalLen), tt.size, tt.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f.Count(); got != tt.want {
				t.Errorf("Count: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFramerFrameOffsets(t *testing.T) {
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = float64(i)
	}

	f, err := NewFramer(signal, 16, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := f.Count()
	if count != 6 {
		t.Fatalf("Count: got %d, want 6", count)
	}

	for i := 0; i < count; i++ {
		frame := f.Frame(i)
		if len(frame) != 16 {
			t.Fatalf("frame %d: got length %d, want 16", i, len(frame))
		}
		if frame[0] != float64(i*8) {
			t.Errorf("frame %d: first sample %g, want %d", i, frame[0], i*8)
		}
		if frame[15] != float64(i*8+15) {
			t.Errorf("frame %d: last sample %g, want %d", i, frame[15], i*8+15)
		}
	}
}

func TestFramerFrameIsCopy(t *testing.T) {
	signal := make([]float64, 64)
	f, err := NewFramer(signal, 16, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame := f.Frame(0)
	frame[0] = 42.0

	if signal[0] != 0 {
		t.Error("mutating a frame leaked into the underlying signal")
	}

	// A fresh read of the same frame sees the original data
	if again := f.Frame(0); again[0] != 0 {
		t.Error("frames are not independent copies")
	}
}

func TestFramerFrameOutOfRange(t *testing.T) {
	f, err := NewFramer(make([]float64, 64), 16, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.Frame(-1); got != nil {
		t.Error("expected nil for negative index")
	}
	if got := f.Frame(f.Count()); got != nil {
		t.Error("expected nil for index past the last frame")
	}
}
