// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/models"
)

const capturePrompt = "[Enter] capture, [q] cancel > "

// CommandFaceCapturer is a [biometric.FaceCapturer] that runs a camera
// command once the user confirms.
type CommandFaceCapturer struct {
	cmd      string
	prompter *Prompter
	runner   Runner
	retries  int
	logger   *logger.Logger
}

// NewCommandFaceCapturer returns a capturer running cmd, which must write a
// single image to {out}. A failing command is re-run up to retries times.
func NewCommandFaceCapturer(cmd string, prompter *Prompter, runner Runner, retries int, log *logger.Logger) *CommandFaceCapturer {
	if retries < 1 {
		retries = 1
	}
	return &CommandFaceCapturer{cmd: cmd, prompter: prompter, runner: runner, retries: retries, logger: log}
}

// CaptureFaceFrame implements [biometric.FaceCapturer].
func (c *CommandFaceCapturer) CaptureFaceFrame(ctx context.Context) (models.ImageSample, error) {
	log := c.logger.Ctx(ctx)

	if err := c.prompter.Confirm(ctx, capturePrompt); err != nil {
		return models.ImageSample{}, err
	}

	var img models.ImageSample
	err := withTempDir(func(dir string) error {
		out := filepath.Join(dir, "frame")
		argv, err := expand(c.cmd, map[string]string{PlaceholderOut: out})
		if err != nil {
			return fmt.Errorf("face capture: %w", err)
		}

		var lastErr error
		for attempt := 1; attempt <= c.retries; attempt++ {
			if _, lastErr = c.runner.Run(ctx, argv); lastErr == nil {
				img, lastErr = readImage(out)
				if lastErr == nil {
					return nil
				}
			}
			if isCancelled(ctx, lastErr) {
				return fmt.Errorf("%w: %w", biometric.ErrCaptureCancelled, lastErr)
			}
			log.Warn().Err(lastErr).Str("func", "CommandFaceCapturer.CaptureFaceFrame").
				Int("attempt", attempt).Str("cmd", argv[0]).Msg("face capture failed")
		}
		return fmt.Errorf("face capture after %d attempts: %w", c.retries, lastErr)
	})
	if err != nil {
		return models.ImageSample{}, err
	}

	log.Debug().Str("func", "CommandFaceCapturer.CaptureFaceFrame").Str("format", img.Format).Int("bytes", len(img.Data)).Msg("frame captured")
	return img, nil
}

func readImage(path string) (models.ImageSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ImageSample{}, fmt.Errorf("%w: read image: %w", ErrInvalidOutput, err)
	}
	if len(data) == 0 {
		return models.ImageSample{}, fmt.Errorf("%w: empty image", ErrInvalidOutput)
	}

	ct := http.DetectContentType(data)
	format, ok := strings.CutPrefix(ct, "image/")
	if !ok {
		return models.ImageSample{}, fmt.Errorf("%w: not an image (%s)", ErrInvalidOutput, ct)
	}
	return models.ImageSample{Data: data, Format: format}, nil
}

// CommandFaceEncoder is a [biometric.FaceEncoder] that runs a face
// embedding extractor.
type CommandFaceEncoder struct {
	cmd    string
	runner Runner
	logger *logger.Logger
}

// NewCommandFaceEncoder returns an encoder running cmd with the image path
// in {in}. The command prints the embedding of the single face in the image
// as a JSON array; an empty array means no face was found.
func NewCommandFaceEncoder(cmd string, runner Runner, log *logger.Logger) *CommandFaceEncoder {
	return &CommandFaceEncoder{cmd: cmd, runner: runner, logger: log}
}

// ExtractFaceEmbedding implements [biometric.FaceEncoder].
func (e *CommandFaceEncoder) ExtractFaceEmbedding(ctx context.Context, img models.ImageSample) (models.FaceTemplate, error) {
	if len(img.Data) == 0 {
		return models.FaceTemplate{}, biometric.ErrNoFaceDetected
	}

	var vec models.Embedding
	err := withTempDir(func(dir string) error {
		in := filepath.Join(dir, "frame."+imageExt(img.Format))
		if err := os.WriteFile(in, img.Data, 0o600); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		argv, err := expand(e.cmd, map[string]string{PlaceholderIn: in})
		if err != nil {
			return fmt.Errorf("face extractor: %w", err)
		}

		out, err := e.runner.Run(ctx, argv)
		if err != nil {
			return err
		}
		vec, err = parseEmbedding(out)
		return err
	})
	if err != nil {
		e.logger.Ctx(ctx).Err(err).Str("func", "CommandFaceEncoder.ExtractFaceEmbedding").Msg("error extracting face embedding")
		return models.FaceTemplate{}, err
	}

	if vec.Dim() == 0 {
		return models.FaceTemplate{}, biometric.ErrNoFaceDetected
	}
	return models.FaceTemplate{Vector: vec}, nil
}

func imageExt(format string) string {
	switch format {
	case "jpeg", "":
		return "jpg"
	default:
		return format
	}
}

// isCancelled reports whether err or ctx signal an aborted capture.
func isCancelled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, biometric.ErrCaptureCancelled)
}
