// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/store"
	"github.com/MKhiriev/red-box/models"
)

// enroller is the private implementation of [Enroller].
type enroller struct {
	enrollment store.EnrollmentStore
	sensors    biometric.Sensors
	opts       GateOptions
	notifier   Notifier
	logger     *logger.Logger
}

// NewEnroller returns an [Enroller] that captures with sensors and persists
// into enrollment. Enrolling a factor replaces the previous one.
func NewEnroller(enrollment store.EnrollmentStore, sensors biometric.Sensors, opts GateOptions, notifier Notifier, log *logger.Logger) Enroller {
	return &enroller{
		enrollment: enrollment,
		sensors:    sensors,
		opts:       opts,
		notifier:   notifier,
		logger:     log,
	}
}

func (e *enroller) Status(ctx context.Context) (models.EnrollmentStatus, error) {
	return e.enrollment.Status(ctx)
}

// EnrollFace captures a frame, extracts the face embedding and stores it.
// A frame without a face stores nothing and returns [ErrNoFaceDetected].
func (e *enroller) EnrollFace(ctx context.Context) error {
	log := e.logger.Ctx(ctx)

	notify(ctx, e.notifier, models.NoticeInfo, app.TitleFaceCapture, app.MsgLookAtCamera)
	img, err := e.sensors.FaceCapturer.CaptureFaceFrame(ctx)
	if err != nil {
		if isCancel(ctx, err) {
			notify(ctx, e.notifier, models.NoticeWarning, app.TitleEnrollment, app.MsgCaptureCancelled)
			return ErrCaptureCancelled
		}
		log.Err(err).Str("func", "enroller.EnrollFace").Msg("error capturing face")
		return fmt.Errorf("capture face: %w", err)
	}

	face, err := e.sensors.FaceEncoder.ExtractFaceEmbedding(ctx, img)
	if errors.Is(err, biometric.ErrNoFaceDetected) {
		notify(ctx, e.notifier, models.NoticeError, app.TitleError, app.MsgNoFaceDetected)
		return ErrNoFaceDetected
	}
	if err != nil {
		log.Err(err).Str("func", "enroller.EnrollFace").Msg("error extracting face embedding")
		return fmt.Errorf("extract face embedding: %w", err)
	}

	if err := e.enrollment.SaveFaceTemplate(ctx, face); err != nil {
		return fmt.Errorf("save face template: %w", err)
	}

	log.Info().Str("func", "enroller.EnrollFace").Msg("face enrolled")
	notify(ctx, e.notifier, models.NoticeSuccess, app.TitleSuccess, app.MsgFaceEnrolled)
	return nil
}

// EnrollVoice records an utterance and stores the raw recording. The
// recording is run through the voice encoder once so a broken extractor is
// reported at enrollment instead of at the first verification.
func (e *enroller) EnrollVoice(ctx context.Context) error {
	log := e.logger.Ctx(ctx)

	notifyf(ctx, e.notifier, models.NoticeInfo, app.TitleEnrollment, app.MsgSpeakNow, int(e.opts.VoiceDuration.Seconds()))
	sample, err := e.sensors.VoiceRecorder.CaptureAudio(ctx, e.opts.VoiceDuration, e.opts.SampleRate)
	if err != nil {
		if isCancel(ctx, err) {
			notify(ctx, e.notifier, models.NoticeWarning, app.TitleEnrollment, app.MsgCaptureCancelled)
			return ErrCaptureCancelled
		}
		log.Err(err).Str("func", "enroller.EnrollVoice").Msg("error recording voice")
		return fmt.Errorf("record voice: %w", err)
	}

	if _, err := e.sensors.VoiceEncoder.ExtractVoiceEmbedding(ctx, sample); err != nil {
		log.Err(err).Str("func", "enroller.EnrollVoice").Msg("error extracting voice embedding")
		return fmt.Errorf("extract voice embedding: %w", err)
	}

	if err := e.enrollment.SaveVoiceEnrollment(ctx, sample); err != nil {
		return fmt.Errorf("save voice enrollment: %w", err)
	}

	log.Info().Str("func", "enroller.EnrollVoice").Int("frames", sample.Frames()).Msg("voice enrolled")
	notify(ctx, e.notifier, models.NoticeSuccess, app.TitleSuccess, app.MsgVoiceEnrolled)
	return nil
}
