// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/wav"
	"github.com/MKhiriev/red-box/models"
)

// CommandVoiceRecorder is a [biometric.VoiceRecorder] that runs a recorder
// command.
type CommandVoiceRecorder struct {
	cmd     string
	runner  Runner
	retries int
	logger  *logger.Logger
}

// NewCommandVoiceRecorder returns a recorder running cmd, which must record
// {seconds} seconds of mono audio at {rate} Hz into the PCM16 WAV file
// {out}.
func NewCommandVoiceRecorder(cmd string, runner Runner, retries int, log *logger.Logger) *CommandVoiceRecorder {
	if retries < 1 {
		retries = 1
	}
	return &CommandVoiceRecorder{cmd: cmd, runner: runner, retries: retries, logger: log}
}

// CaptureAudio implements [biometric.VoiceRecorder].
func (r *CommandVoiceRecorder) CaptureAudio(ctx context.Context, duration time.Duration, sampleRate int) (models.AudioSample, error) {
	log := r.logger.Ctx(ctx)

	seconds := max(int(math.Ceil(duration.Seconds())), 1)

	var sample models.AudioSample
	err := withTempDir(func(dir string) error {
		out := filepath.Join(dir, "voice.wav")
		argv, err := expand(r.cmd, map[string]string{
			PlaceholderOut:     out,
			PlaceholderSeconds: strconv.Itoa(seconds),
			PlaceholderRate:    strconv.Itoa(sampleRate),
		})
		if err != nil {
			return fmt.Errorf("voice recorder: %w", err)
		}

		var lastErr error
		for attempt := 1; attempt <= r.retries; attempt++ {
			if _, lastErr = r.runner.Run(ctx, argv); lastErr == nil {
				sample, lastErr = readRecording(out)
				if lastErr == nil {
					return nil
				}
			}
			if isCancelled(ctx, lastErr) {
				return fmt.Errorf("%w: %w", biometric.ErrCaptureCancelled, lastErr)
			}
			log.Warn().Err(lastErr).Str("func", "CommandVoiceRecorder.CaptureAudio").
				Int("attempt", attempt).Str("cmd", argv[0]).Msg("voice recording failed")
		}
		return fmt.Errorf("voice recording after %d attempts: %w", r.retries, lastErr)
	})
	if err != nil {
		return models.AudioSample{}, err
	}

	if sample.SampleRate != sampleRate {
		log.Warn().Str("func", "CommandVoiceRecorder.CaptureAudio").
			Int("requested_rate", sampleRate).Int("recorded_rate", sample.SampleRate).Msg("recorder ignored the requested sample rate")
	}
	return sample, nil
}

func readRecording(path string) (models.AudioSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.AudioSample{}, fmt.Errorf("%w: read recording: %w", ErrInvalidOutput, err)
	}

	sample, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return models.AudioSample{}, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}
	if sample.Frames() == 0 {
		return models.AudioSample{}, fmt.Errorf("%w: empty recording", ErrInvalidOutput)
	}
	return sample, nil
}

// CommandVoiceEncoder is a [biometric.VoiceEncoder] that runs a speaker
// embedding extractor.
type CommandVoiceEncoder struct {
	cmd    string
	runner Runner
	logger *logger.Logger
}

// NewCommandVoiceEncoder returns an encoder running cmd with the path of a
// PCM16 WAV file in {in}. The command prints the speaker embedding as a
// JSON array.
func NewCommandVoiceEncoder(cmd string, runner Runner, log *logger.Logger) *CommandVoiceEncoder {
	return &CommandVoiceEncoder{cmd: cmd, runner: runner, logger: log}
}

// ExtractVoiceEmbedding implements [biometric.VoiceEncoder].
func (e *CommandVoiceEncoder) ExtractVoiceEmbedding(ctx context.Context, sample models.AudioSample) (models.VoiceTemplate, error) {
	var vec models.Embedding
	err := withTempDir(func(dir string) error {
		in := filepath.Join(dir, "voice.wav")

		var buf bytes.Buffer
		if err := wav.Encode(&buf, sample); err != nil {
			return err
		}
		if err := os.WriteFile(in, buf.Bytes(), 0o600); err != nil {
			return fmt.Errorf("write recording: %w", err)
		}

		argv, err := expand(e.cmd, map[string]string{PlaceholderIn: in})
		if err != nil {
			return fmt.Errorf("voice extractor: %w", err)
		}

		out, err := e.runner.Run(ctx, argv)
		if err != nil {
			return err
		}
		vec, err = parseEmbedding(out)
		return err
	})
	if err != nil {
		e.logger.Ctx(ctx).Err(err).Str("func", "CommandVoiceEncoder.ExtractVoiceEmbedding").Msg("error extracting voice embedding")
		return models.VoiceTemplate{}, err
	}

	if vec.Dim() == 0 {
		return models.VoiceTemplate{}, biometric.ErrEmptyEmbedding
	}
	return models.VoiceTemplate{Vector: vec}, nil
}
