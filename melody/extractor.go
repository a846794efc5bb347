// Package melody extracts a monophonic melody, an ordered sequence of note
// labels, from a buffer of PCM audio samples. The buffer is scanned in
// fixed-size overlapping windows; windows that carry energy are tapered,
// autocorrelated to locate the fundamental period, and quantized to the
// nearest note in a constrained musical range.
package melody

import (
	"context"

	"github.com/RyanBlaney/sonido-melody/algorithms/temporal"
	"github.com/RyanBlaney/sonido-melody/algorithms/tonal"
	"github.com/RyanBlaney/sonido-melody/algorithms/windowing"
	"github.com/RyanBlaney/sonido-melody/logging"
)

// ProgressFunc receives the fraction of windows processed so far, in [0, 1].
// It is invoked synchronously, exactly once per window, and must not block.
type ProgressFunc func(fraction float64)

// Extractor runs the full pitch-analysis pass over a sample buffer. An
// Extractor is reusable across buffers; it holds no per-run state.
type Extractor struct {
	cfg      Config
	hann     *windowing.Hann
	gate     *temporal.SilenceGate
	quant    *tonal.PitchQuantizer
	progress ProgressFunc
	logger   logging.Logger
}

// NewExtractor creates an extractor with default parameters and the given
// note namer
func NewExtractor(namer tonal.NoteNamer) *Extractor {
	e, _ := NewExtractorWithConfig(DefaultConfig(), namer)
	return e
}

// NewExtractorWithConfig creates an extractor with custom parameters
func NewExtractorWithConfig(cfg Config, namer tonal.NoteNamer) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	quant := tonal.NewPitchQuantizerWithParams(tonal.QuantizerParams{
		MinFreq:     cfg.MinFreq,
		MaxFreq:     cfg.MaxFreq,
		MinSemitone: cfg.MinSemitone,
		MaxSemitone: cfg.MaxSemitone,
	}, namer)

	return &Extractor{
		cfg:      cfg,
		hann:     windowing.NewHann(cfg.WindowSize),
		gate:     temporal.NewSilenceGate(cfg.SilenceThreshold),
		quant:    quant,
		progress: func(float64) {},
		logger:   logging.WithFields(logging.Fields{"component": "melody_extractor"}),
	}, nil
}

// OnProgress sets the progress observer. Passing nil restores the no-op
// default.
func (e *Extractor) OnProgress(fn ProgressFunc) {
	if fn == nil {
		fn = func(float64) {}
	}
	e.progress = fn
}

// Config returns the extractor's parameters
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract scans the buffer and returns the detected notes in temporal
// order. Windows that are silent, aperiodic, or out of musical range
// contribute no note but still advance progress, so an empty or partial
// sequence is a valid outcome, not a failure. A buffer shorter than one
// window yields an empty sequence and no progress callbacks.
//
// Cancellation is checked once per window; on cancellation the notes
// collected so far are returned along with the context error.
func (e *Extractor) Extract(ctx context.Context, buf *SampleBuffer) ([]string, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	framer, err := windowing.NewFramer(buf.PCM, e.cfg.WindowSize, e.cfg.StepSize)
	if err != nil {
		return nil, err
	}

	estimator := tonal.NewAutocorrelationEstimatorWithParams(tonal.AutocorrelationParams{
		SampleRate:   buf.SampleRate,
		MaxFreq:      e.cfg.MaxFreq,
		Method:       tonal.TimeDomain,
		UseFFT:       true,
		FFTThreshold: 2048,
	})

	total := framer.Count()
	notes := make([]string, 0, total)

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			e.logger.Debug("extraction canceled", logging.Fields{
				"processed_windows": i,
				"total_windows":     total,
			})
			return notes, err
		}

		frame := framer.Frame(i)
		if !e.gate.IsSilent(frame) {
			// Taper only windows that pass the gate; silent windows never
			// reach the estimator
			tapered := e.hann.Apply(frame)
			if freq, ok := estimator.EstimatePitch(tapered); ok {
				if note, ok := e.quant.Quantize(freq); ok {
					notes = append(notes, note)
				}
			}
		}

		e.progress(float64(i+1) / float64(total))
	}

	e.logger.Debug("extraction complete", logging.Fields{
		"sample_rate":   buf.SampleRate,
		"total_windows": total,
		"notes":         len(notes),
	})

	return notes, nil
}
