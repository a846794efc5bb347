package tonal

import (
	"github.com/RyanBlaney/sonido-melody/logging"
)

// NoteNamer is the pure note-naming collaborator consumed by the quantizer.
// Both operations are stateless; failures are recoverable and simply skip
// the note in question.
type NoteNamer interface {
	// FrequencyToSemitone converts a frequency in Hz to the nearest integer
	// semitone number (MIDI convention, A4 = 69 = 440 Hz)
	FrequencyToSemitone(freq float64) (int, error)

	// SemitoneToName renders an integer semitone number as a canonical note
	// label, e.g. "A4"
	SemitoneToName(semitone int) (string, error)
}

// QuantizerParams contains the acceptance bounds for pitch quantization
type QuantizerParams struct {
	// Frequency acceptance range in Hz, both bounds exclusive
	MinFreq float64 `json:"min_freq"`
	MaxFreq float64 `json:"max_freq"`

	// Semitone acceptance range, both bounds inclusive
	MinSemitone int `json:"min_semitone"`
	MaxSemitone int `json:"max_semitone"`
}

// DefaultQuantizerParams returns the standard four-octave melodic window
// (C3-C6) over the plausible melodic frequency range
func DefaultQuantizerParams() QuantizerParams {
	return QuantizerParams{
		MinFreq:     60.0,
		MaxFreq:     1000.0,
		MinSemitone: 48,
		MaxSemitone: 84,
	}
}

// PitchQuantizer converts an estimated fundamental frequency into a
// constrained note label, discarding estimates outside the supported musical
// range
type PitchQuantizer struct {
	params QuantizerParams
	namer  NoteNamer
	logger logging.Logger
}

// NewPitchQuantizer creates a quantizer with default bounds
func NewPitchQuantizer(namer NoteNamer) *PitchQuantizer {
	return NewPitchQuantizerWithParams(DefaultQuantizerParams(), namer)
}

// NewPitchQuantizerWithParams creates a quantizer with custom bounds
func NewPitchQuantizerWithParams(params QuantizerParams, namer NoteNamer) *PitchQuantizer {
	return &PitchQuantizer{
		params: params,
		namer:  namer,
		logger: logging.WithFields(logging.Fields{"component": "pitch_quantizer"}),
	}
}

// Quantize maps a frequency estimate to a note label. Returns ok=false when
// the frequency or its semitone lies outside the configured bounds, or when
// the naming collaborator cannot render an otherwise in-range value; the
// latter is logged as a warning rather than treated as fatal.
func (pq *PitchQuantizer) Quantize(freq float64) (string, bool) {
	if freq <= pq.params.MinFreq || freq >= pq.params.MaxFreq {
		return "", false
	}

	semitone, err := pq.namer.FrequencyToSemitone(freq)
	if err != nil {
		pq.logger.Warn("semitone conversion failed", logging.Fields{
			"freq": freq,
		})
		return "", false
	}

	if semitone < pq.params.MinSemitone || semitone > pq.params.MaxSemitone {
		return "", false
	}

	name, err := pq.namer.SemitoneToName(semitone)
	if err != nil {
		pq.logger.Warn("note naming failed", logging.Fields{
			"semitone": semitone,
			"freq":     freq,
		})
		return "", false
	}

	return name, true
}

// Parameters returns the current quantizer bounds
func (pq *PitchQuantizer) Parameters() QuantizerParams {
	return pq.params
}
