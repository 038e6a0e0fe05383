// Package extract turns audio files into the tabular feature rows the
// recommendation engine loads. Decoding shells out to ffmpeg; feature math is
// frame-based FFT analysis.
package extract

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"time"

	"github.com/nkapur/auralist/logging"
)

// Audio is decoded mono PCM ready for analysis.
type Audio struct {
	PCM        []float64
	SampleRate int
	Duration   time.Duration
}

// DecoderConfig configures how files are decoded before analysis.
type DecoderConfig struct {
	FFmpegPath       string        `json:"ffmpeg_path"`        // Path to ffmpeg binary
	TargetSampleRate int           `json:"target_sample_rate"` // Analysis sample rate
	MaxDuration      time.Duration `json:"max_duration"`       // Truncate long files, 0 = whole file
	Timeout          time.Duration `json:"timeout"`            // Per-file decode timeout
}

// DefaultDecoderConfig returns sensible decoding defaults. 22.05 kHz mono is
// plenty for the spectral features the engine compares on.
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		FFmpegPath:       "ffmpeg", // Assume in PATH
		TargetSampleRate: 22050,
		MaxDuration:      120 * time.Second,
		Timeout:          60 * time.Second,
	}
}

// Decoder decodes audio files to mono float64 PCM via ffmpeg.
type Decoder struct {
	config *DecoderConfig
	logger logging.Logger
}

// NewDecoder creates a decoder. A nil config gets defaults.
func NewDecoder(config *DecoderConfig, logger logging.Logger) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.Or(logger).WithFields(logging.Fields{
			"component": "audio_decoder",
		}),
	}
}

// Decode reads path through ffmpeg into mono f64le PCM at the target sample
// rate.
func (d *Decoder) Decode(ctx context.Context, path string) (*Audio, error) {
	logger := d.logger.WithFields(logging.Fields{"path": path})

	args := []string{
		"-v", "error",
		"-i", path,
		"-map", "0:a:0",
		"-f", "f64le", // Raw float64 little-endian
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", d.config.TargetSampleRate),
	}
	if d.config.MaxDuration > 0 {
		args = append(args, "-t", fmt.Sprintf("%.2f", d.config.MaxDuration.Seconds()))
	}
	args = append(args, "-")

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, d.config.FFmpegPath, args...)

	logger.Debug("Running ffmpeg decode")
	output, err := cmd.Output()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			logger.Error(err, "Ffmpeg decode failed", logging.Fields{
				"stderr": string(exitError.Stderr),
			})
			return nil, fmt.Errorf("ffmpeg decode failed: %w, stderr: %s", err, string(exitError.Stderr))
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w", err)
	}

	pcm := bytesToPCM(output)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("ffmpeg produced no audio data for %s", path)
	}

	audio := &Audio{
		PCM:        pcm,
		SampleRate: d.config.TargetSampleRate,
		Duration:   time.Duration(float64(len(pcm)) / float64(d.config.TargetSampleRate) * float64(time.Second)),
	}

	logger.Debug("Decode completed", logging.Fields{
		"samples":  len(pcm),
		"duration": audio.Duration.Seconds(),
	})

	return audio, nil
}

// bytesToPCM reinterprets raw f64le output as float64 samples, dropping any
// trailing partial sample and non-finite values.
func bytesToPCM(data []byte) []float64 {
	n := len(data) / 8
	pcm := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		pcm = append(pcm, v)
	}
	return pcm
}
