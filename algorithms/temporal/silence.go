package temporal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SilenceGate rejects frames carrying negligible energy before the expensive
// pitch analysis runs. The threshold is an absolute amplitude fraction and
// assumes input normalized to roughly [-1, 1]; it is not adaptive.
type SilenceGate struct {
	threshold float64
}

// NewSilenceGate creates a silence gate with the given RMS threshold
func NewSilenceGate(threshold float64) *SilenceGate {
	return &SilenceGate{
		threshold: threshold,
	}
}

// RMS computes the root-mean-square amplitude of a frame
func RMS(frame []float64) float64 {
	if len(frame) == 0 {
		return 0.0
	}
	return math.Sqrt(floats.Dot(frame, frame) / float64(len(frame)))
}

// IsSilent reports whether the frame's RMS falls below the gate threshold
func (sg *SilenceGate) IsSilent(frame []float64) bool {
	return RMS(frame) < sg.threshold
}

// Threshold returns the gate's RMS threshold
func (sg *SilenceGate) Threshold() float64 {
	return sg.threshold
}

// ShortTimeRMS calculates the RMS amplitude of overlapping frames across the
// whole signal, one value per frame offset
func ShortTimeRMS(signal []float64, frameSize, hopSize int) []float64 {
	if len(signal) < frameSize || frameSize <= 0 || hopSize <= 0 {
		return []float64{}
	}

	numFrames := (len(signal)-frameSize)/hopSize + 1
	energies := make([]float64, numFrames)

	for i := 0; i < numFrames; i++ {
		startIdx := i * hopSize
		energies[i] = RMS(signal[startIdx : startIdx+frameSize])
	}

	return energies
}

// SilenceRatio calculates the fraction of frames whose RMS falls below the
// threshold. Useful as a quick summary of how much of a take is silence.
func SilenceRatio(signal []float64, frameSize, hopSize int, threshold float64) float64 {
	energies := ShortTimeRMS(signal, frameSize, hopSize)
	if len(energies) == 0 {
		return 0.0
	}

	silentFrames := 0
	for _, energy := range energies {
		if energy < threshold {
			silentFrames++
		}
	}

	return float64(silentFrames) / float64(len(energies))
}
