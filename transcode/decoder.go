// Package transcode decodes recorded audio files into the mono PCM sample
// buffers the melody extractor consumes. Decoding is delegated to FFmpeg;
// the extractor core itself never touches containers or codecs.
package transcode

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"time"

	"github.com/RyanBlaney/sonido-melody/logging"
	"github.com/RyanBlaney/sonido-melody/melody"
)

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	TargetSampleRate int           `json:"target_sample_rate"`
	FFmpegPath       string        `json:"ffmpeg_path"` // Path to ffmpeg binary
	Timeout          time.Duration `json:"timeout"`     // Timeout for ffmpeg operations
}

// DefaultDecoderConfig returns default decoder configuration
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		TargetSampleRate: 44100,
		FFmpegPath:       "ffmpeg", // Assume in PATH
		Timeout:          60 * time.Second,
	}
}

// Decoder handles audio decoding using FFmpeg
type Decoder struct {
	config *DecoderConfig
}

// NewDecoder creates a new audio decoder
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{config: config}
}

// DecodeFile decodes an audio file to a mono sample buffer at the target
// sample rate. Any container or codec FFmpeg understands is accepted.
func (d *Decoder) DecodeFile(ctx context.Context, filename string) (*melody.SampleBuffer, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "audio_decoder",
		"filename":  filename,
	})

	args := []string{
		"-i", filename,
		"-vn",         // No video
		"-f", "f64le", // Output raw float64 little-endian
		"-ac", "1", // Mono for pitch analysis
		"-ar", strconv.Itoa(d.config.TargetSampleRate),
		"pipe:1",
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, d.config.FFmpegPath, args...)

	logger.Debug("Running FFmpeg decode command")

	startTime := time.Now()
	output, err := cmd.Output()
	if err != nil {
		logger.Error(err, "FFmpeg decode failed")
		return nil, fmt.Errorf("ffmpeg decode: %w", err)
	}

	samples, err := parseF64LE(output)
	if err != nil {
		return nil, err
	}

	logger.Debug("Audio file decoded", logging.Fields{
		"samples":     len(samples),
		"sample_rate": d.config.TargetSampleRate,
		"decode_time": time.Since(startTime).Seconds(),
	})

	return &melody.SampleBuffer{
		PCM:        samples,
		SampleRate: d.config.TargetSampleRate,
	}, nil
}

// parseF64LE converts raw little-endian float64 bytes to samples
func parseF64LE(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("PCM byte stream length %d is not a multiple of 8", len(data))
	}

	samples := make([]float64, len(data)/8)
	for i := range samples {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		samples[i] = math.Float64frombits(bits)
	}

	return samples, nil
}
