// Package notation renders integer semitone numbers as note labels and
// back. Semitones follow the MIDI convention: A4 = 69 = 440 Hz, octaves
// change between B and C, and middle C (C4) is 60.
package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// ReferenceFreq is the equal-tempered tuning reference (A4) in Hz
	ReferenceFreq = 440.0

	// ReferenceSemitone is the MIDI number assigned to the reference pitch
	ReferenceSemitone = 69
)

var degreeNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Standard is the stateless note namer using sharps and MIDI octave
// numbering. It satisfies tonal.NoteNamer.
type Standard struct{}

// FrequencyToSemitone converts a frequency in Hz to the nearest integer
// semitone number: round(69 + 12*log2(freq/440))
func (Standard) FrequencyToSemitone(freq float64) (int, error) {
	if freq <= 0 {
		return 0, fmt.Errorf("frequency must be positive, got %g", freq)
	}

	semitone := ReferenceSemitone + 12.0*math.Log2(freq/ReferenceFreq)
	return int(math.Round(semitone)), nil
}

// SemitoneToName renders an integer semitone number as a note label,
// e.g. 69 -> "A4", 61 -> "C#4"
func (Standard) SemitoneToName(semitone int) (string, error) {
	if semitone < 0 || semitone > 127 {
		return "", fmt.Errorf("semitone %d outside MIDI range [0, 127]", semitone)
	}

	return fmt.Sprintf("%s%d", degreeNames[semitone%12], semitone/12-1), nil
}

// NameToSemitone parses a note label produced by SemitoneToName back into
// its semitone number
func (Standard) NameToSemitone(name string) (int, error) {
	degree := -1
	rest := ""

	// Longer names first so "C#" isn't parsed as "C"
	for d := len(degreeNames) - 1; d >= 0; d-- {
		if strings.HasPrefix(name, degreeNames[d]) {
			degree = d
			rest = name[len(degreeNames[d]):]
			break
		}
	}

	if degree < 0 {
		return 0, fmt.Errorf("invalid note name %q", name)
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note name %q", name)
	}

	semitone := (octave+1)*12 + degree
	if semitone < 0 || semitone > 127 {
		return 0, fmt.Errorf("note %q outside MIDI range", name)
	}

	return semitone, nil
}

// SemitoneToFrequency converts an integer semitone number to its
// equal-tempered frequency in Hz
func (Standard) SemitoneToFrequency(semitone int) float64 {
	return ReferenceFreq * math.Pow(2, float64(semitone-ReferenceSemitone)/12.0)
}
