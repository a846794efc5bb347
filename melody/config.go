package melody

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the extraction parameters. All values have working defaults;
// tests and callers override individual fields as needed rather than relying
// on hidden module state.
type Config struct {
	// Analysis window length in samples
	WindowSize int `yaml:"window_size" json:"window_size"`

	// Offset between successive windows in samples; must stay below
	// WindowSize so windows overlap
	StepSize int `yaml:"step_size" json:"step_size"`

	// RMS amplitude below which a window counts as silence
	SilenceThreshold float64 `yaml:"silence_threshold" json:"silence_threshold"`

	// Frequency acceptance range in Hz, both bounds exclusive. MaxFreq also
	// floors the correlation peak search lag.
	MinFreq float64 `yaml:"min_freq" json:"min_freq"`
	MaxFreq float64 `yaml:"max_freq" json:"max_freq"`

	// Semitone acceptance range, both bounds inclusive
	MinSemitone int `yaml:"min_semitone" json:"min_semitone"`
	MaxSemitone int `yaml:"max_semitone" json:"max_semitone"`
}

// DefaultConfig returns the standard extraction parameters: ~93ms windows at
// 44.1kHz with 75% overlap, gated at 1% full-scale RMS, quantized to the
// C3-C6 melodic window
func DefaultConfig() Config {
	return Config{
		WindowSize:       4096,
		StepSize:         1024,
		SilenceThreshold: 0.01,
		MinFreq:          60.0,
		MaxFreq:          1000.0,
		MinSemitone:      48,
		MaxSemitone:      84,
	}
}

// Validate checks the invariants between parameters
func (c Config) Validate() error {
	if c.StepSize <= 0 {
		return fmt.Errorf("step size must be positive, got %d", c.StepSize)
	}
	if c.WindowSize <= c.StepSize {
		return fmt.Errorf("window size (%d) must exceed step size (%d)", c.WindowSize, c.StepSize)
	}
	if c.SilenceThreshold < 0 {
		return fmt.Errorf("silence threshold must be non-negative, got %g", c.SilenceThreshold)
	}
	if c.MinFreq <= 0 || c.MaxFreq <= c.MinFreq {
		return fmt.Errorf("frequency range (%g, %g) is invalid", c.MinFreq, c.MaxFreq)
	}
	if c.MaxSemitone < c.MinSemitone {
		return fmt.Errorf("semitone range [%d, %d] is invalid", c.MinSemitone, c.MaxSemitone)
	}
	return nil
}

// LoadConfig reads a YAML config file over the defaults, so partial files
// only override the fields they name
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
