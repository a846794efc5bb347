package tonal

import (
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-melody/algorithms/common"
)

// AutocorrelationMethod represents the computational approach for the
// correlation profile
type AutocorrelationMethod int

const (
	// Direct time-domain calculation, O(N^2) per frame
	TimeDomain AutocorrelationMethod = iota

	// FFT-based via the Wiener-Khinchin theorem (faster for large frames)
	FrequencyDomain
)

// AutocorrelationParams contains parameters for pitch estimation
type AutocorrelationParams struct {
	SampleRate int `json:"sample_rate"`

	// MaxFreq caps the detectable frequency from above: the correlation peak
	// search starts at lag floor(SampleRate / MaxFreq), excluding the
	// zero-lag peak and implausibly high-frequency matches.
	MaxFreq float64 `json:"max_freq"`

	Method AutocorrelationMethod `json:"method"`

	// Performance optimization
	UseFFT       bool `json:"use_fft"`
	FFTThreshold int  `json:"fft_threshold"`
}

// DefaultAutocorrelationParams returns sensible defaults for melodic audio
func DefaultAutocorrelationParams(sampleRate int) AutocorrelationParams {
	return AutocorrelationParams{
		SampleRate:   sampleRate,
		MaxFreq:      1000.0,
		Method:       TimeDomain,
		UseFFT:       true,
		FFTThreshold: 2048,
	}
}

// AutocorrelationEstimator estimates the fundamental frequency of a single
// tapered frame from the peak of its autocorrelation profile
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - Rabiner, L., Schafer, R. (1978). "Digital Processing of Speech Signals"
type AutocorrelationEstimator struct {
	params AutocorrelationParams
}

// NewAutocorrelationEstimator creates an estimator with default parameters
func NewAutocorrelationEstimator(sampleRate int) *AutocorrelationEstimator {
	return &AutocorrelationEstimator{
		params: DefaultAutocorrelationParams(sampleRate),
	}
}

// NewAutocorrelationEstimatorWithParams creates an estimator with custom parameters
func NewAutocorrelationEstimatorWithParams(params AutocorrelationParams) *AutocorrelationEstimator {
	return &AutocorrelationEstimator{
		params: params,
	}
}

// EstimatePitch estimates the fundamental frequency of a tapered frame in Hz.
// Returns ok=false when the frame holds no reliable periodicity: an all-zero
// frame, or a correlation peak that resolves to a non-positive lag.
func (ae *AutocorrelationEstimator) EstimatePitch(frame []float64) (float64, bool) {
	normalized, ok := common.PeakNormalize(frame)
	if !ok {
		// Degenerate frame that escaped the energy gate
		return 0, false
	}

	profile := ae.Correlate(normalized)
	if len(profile) == 0 {
		return 0, false
	}

	minLag := int(float64(ae.params.SampleRate) / ae.params.MaxFreq)
	peak := common.MaxIndexFrom(profile, minLag)
	if peak < 0 {
		return 0, false
	}

	lag := common.ParabolicRefine(profile, peak)
	if lag <= 0 {
		return 0, false
	}

	return float64(ae.params.SampleRate) / lag, true
}

// Correlate builds the autocorrelation profile of a signal, indexed by lag,
// of length len(signal)/2:
//
//	profile[lag] = sum_{i=0}^{N-lag-1} signal[i] * signal[i+lag]
//
// The profile is unbiased and non-normalized. Method selection follows the
// parameters; with UseFFT set, signals at or above FFTThreshold go through
// the frequency-domain path, which matches the direct sums within numeric
// tolerance.
func (ae *AutocorrelationEstimator) Correlate(signal []float64) []float64 {
	half := len(signal) / 2
	if half == 0 {
		return []float64{}
	}

	if ae.params.Method == FrequencyDomain ||
		(ae.params.UseFFT && len(signal) >= ae.params.FFTThreshold) {
		return ae.correlateFFT(signal, half)
	}

	return ae.correlateDirect(signal, half)
}

// correlateDirect computes the lag sums in the time domain
func (ae *AutocorrelationEstimator) correlateDirect(signal []float64, half int) []float64 {
	n := len(signal)
	profile := make([]float64, half)

	for lag := 0; lag < half; lag++ {
		profile[lag] = floats.Dot(signal[:n-lag], signal[lag:])
	}

	return profile
}

// correlateFFT computes the same lag sums through the power spectrum.
// Zero-padding to at least twice the signal length keeps the circular
// correlation linear.
func (ae *AutocorrelationEstimator) correlateFFT(signal []float64, half int) []float64 {
	n := len(signal)
	fftSize := nextPowerOf2(2 * n)

	padded := make([]float64, fftSize)
	copy(padded, signal)

	spectrum := fft.FFTReal(padded)

	power := make([]complex128, len(spectrum))
	for i, bin := range spectrum {
		re := real(bin)
		im := imag(bin)
		power[i] = complex(re*re+im*im, 0)
	}

	correlation := fft.IFFT(power)

	profile := make([]float64, half)
	for lag := range profile {
		profile[lag] = real(correlation[lag])
	}

	return profile
}

// Parameters returns the current estimator parameters
func (ae *AutocorrelationEstimator) Parameters() AutocorrelationParams {
	return ae.params
}

// nextPowerOf2 returns the next power of 2 greater than or equal to n
func nextPowerOf2(n int) int {
	if n <= 0 {
		return 1
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
