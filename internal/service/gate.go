// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/store"
	"github.com/MKhiriev/red-box/models"
)

// GateOptions are the capture parameters of the access gate.
type GateOptions struct {
	VoiceDuration time.Duration
	SampleRate    int
}

// accessGate is the private implementation of [Authorizer]. It keeps no
// memory between calls.
type accessGate struct {
	enrollment store.EnrollmentStore
	sensors    biometric.Sensors
	comparator *biometric.Comparator
	opts       GateOptions
	notifier   Notifier
	logger     *logger.Logger
	now        func() time.Time
}

// NewAccessGate returns an [Authorizer] verifying live samples from sensors
// against the identity in enrollment.
func NewAccessGate(
	enrollment store.EnrollmentStore,
	sensors biometric.Sensors,
	comparator *biometric.Comparator,
	opts GateOptions,
	notifier Notifier,
	log *logger.Logger,
) Authorizer {
	return &accessGate{
		enrollment: enrollment,
		sensors:    sensors,
		comparator: comparator,
		opts:       opts,
		notifier:   notifier,
		logger:     log,
		now:        time.Now,
	}
}

// gateRun is the state of one Authorize call.
type gateRun struct {
	attempt *models.AccessAttempt
	log     *logger.Logger
	now     func() time.Time
}

func (r *gateRun) enter(s models.GateState) {
	r.attempt.State = s
	r.attempt.Trail = append(r.attempt.Trail, s)
	r.log.Debug().Str("func", "accessGate.Authorize").Str("state", s.String()).Msg("gate transition")
}

func (r *gateRun) deny(reason models.DenialReason) (models.AccessAttempt, error) {
	r.attempt.Reason = reason
	r.enter(models.GateDenied)
	r.attempt.FinishedAt = r.now()
	r.log.Info().Str("func", "accessGate.Authorize").Str("reason", string(reason)).Msg("access denied")
	return *r.attempt, nil
}

func (r *gateRun) grant() (models.AccessAttempt, error) {
	r.enter(models.GateGranted)
	r.attempt.FinishedAt = r.now()
	r.log.Info().Str("func", "accessGate.Authorize").Float64("voice_similarity", r.attempt.VoiceSimilarity).Msg("access granted")
	return *r.attempt, nil
}

// fail ends the run with an infrastructure error. The attempt stays
// non-terminal.
func (r *gateRun) fail(msg string, err error) (models.AccessAttempt, error) {
	r.attempt.FinishedAt = r.now()
	r.log.Err(err).Str("func", "accessGate.Authorize").Str("state", r.attempt.State.String()).Msg(msg)
	return *r.attempt, fmt.Errorf("%s: %w", msg, err)
}

func isCancel(ctx context.Context, err error) bool {
	return errors.Is(err, biometric.ErrCaptureCancelled) ||
		errors.Is(err, context.Canceled) ||
		ctx.Err() != nil
}

// Authorize implements [Authorizer]:
//
//	Idle → CapturingFace → VerifyingFace → CapturingVoice → VerifyingVoice → {Granted | Denied}
//
// The face factor short-circuits: the voice is never recorded after a face
// mismatch.
func (g *accessGate) Authorize(ctx context.Context, op models.Operation) (models.AccessAttempt, error) {
	log := &logger.Logger{Logger: g.logger.Ctx(ctx).With().Str("operation", string(op)).Logger()}

	run := &gateRun{
		attempt: &models.AccessAttempt{
			Operation: op,
			StartedAt: g.now(),
			State:     models.GateIdle,
			Trail:     []models.GateState{models.GateIdle},
		},
		log: log,
		now: g.now,
	}

	enrolled, err := g.enrollment.IsFullyEnrolled(ctx)
	if err != nil {
		return run.fail("check enrollment", err)
	}
	if !enrolled {
		return run.deny(models.ReasonNotEnrolled)
	}

	enrolledFace, ok, err := g.enrollment.LoadFaceTemplate(ctx)
	if err != nil {
		return run.fail("load face template", err)
	}
	if !ok {
		return run.deny(models.ReasonNotEnrolled)
	}

	// face
	run.enter(models.GateCapturingFace)
	notify(ctx, g.notifier, models.NoticeInfo, app.TitleFaceCapture, app.MsgLookAtCamera)

	img, err := g.sensors.FaceCapturer.CaptureFaceFrame(ctx)
	if err != nil {
		if isCancel(ctx, err) {
			return run.deny(models.ReasonCaptureCancelled)
		}
		return run.fail("capture face", err)
	}
	run.attempt.Face = &img

	run.enter(models.GateVerifyingFace)
	liveFace, err := g.sensors.FaceEncoder.ExtractFaceEmbedding(ctx, img)
	switch {
	case errors.Is(err, biometric.ErrNoFaceDetected):
		return run.deny(models.ReasonFaceMismatch)
	case err != nil:
		if ctx.Err() != nil {
			return run.deny(models.ReasonCaptureCancelled)
		}
		return run.fail("extract face embedding", err)
	}
	if !g.sensors.FaceMatcher.MatchFace(enrolledFace, liveFace) {
		return run.deny(models.ReasonFaceMismatch)
	}
	run.attempt.FaceMatched = true

	// voice
	enrolledVoice, ok, err := g.enrollment.LoadVoiceTemplate(ctx)
	if err != nil {
		return run.fail("load voice template", err)
	}
	if !ok {
		return run.deny(models.ReasonNotEnrolled)
	}

	run.enter(models.GateCapturingVoice)
	notifyf(ctx, g.notifier, models.NoticeInfo, app.TitleVoiceCapture, app.MsgSpeakNow, int(g.opts.VoiceDuration.Seconds()))

	sample, err := g.sensors.VoiceRecorder.CaptureAudio(ctx, g.opts.VoiceDuration, g.opts.SampleRate)
	if err != nil {
		if isCancel(ctx, err) {
			return run.deny(models.ReasonCaptureCancelled)
		}
		return run.fail("capture voice", err)
	}
	run.attempt.Voice = &sample

	run.enter(models.GateVerifyingVoice)
	liveVoice, err := g.sensors.VoiceEncoder.ExtractVoiceEmbedding(ctx, sample)
	if err != nil {
		if ctx.Err() != nil {
			return run.deny(models.ReasonCaptureCancelled)
		}
		return run.fail("extract voice embedding", err)
	}

	score, pass, err := g.comparator.CompareVoice(enrolledVoice, liveVoice)
	if err != nil {
		return run.fail("compare voice", err)
	}
	run.attempt.VoiceSimilarity = score
	if !pass {
		return run.deny(models.ReasonVoiceMismatch)
	}
	run.attempt.VoiceMatched = true

	return run.grant()
}
