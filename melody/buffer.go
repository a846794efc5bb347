package melody

import (
	"errors"
	"fmt"
	"time"
)

// SampleBuffer holds decoded mono PCM audio: floating-point amplitude
// samples normalized to roughly [-1, 1] plus the sample rate. The buffer is
// owned by the caller and treated as immutable for the duration of an
// extraction pass.
type SampleBuffer struct {
	PCM        []float64
	SampleRate int
}

// Validate reports whether the buffer is structurally usable as extraction
// input
func (b *SampleBuffer) Validate() error {
	if b == nil || len(b.PCM) == 0 {
		return errors.New("empty sample buffer")
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", b.SampleRate)
	}
	return nil
}

// Duration returns the buffer's playback duration
func (b *SampleBuffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.PCM)) / float64(b.SampleRate) * float64(time.Second))
}
