// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package biometric

import (
	"context"
	"time"

	"github.com/MKhiriev/red-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/biometric_mock.go -package=mock

// FaceCapturer grabs a single frame from a camera.
type FaceCapturer interface {
	// CaptureFaceFrame blocks until the user triggers a capture. It returns
	// [ErrCaptureCancelled] when the user aborts or ctx is cancelled.
	CaptureFaceFrame(ctx context.Context) (models.ImageSample, error)
}

// FaceEncoder turns an image into a face embedding.
type FaceEncoder interface {
	// ExtractFaceEmbedding returns [ErrNoFaceDetected] when the frame holds
	// no face.
	ExtractFaceEmbedding(ctx context.Context, img models.ImageSample) (models.FaceTemplate, error)
}

// FaceMatcher decides whether two face embeddings belong to the same person.
type FaceMatcher interface {
	MatchFace(enrolled, live models.FaceTemplate) bool
}

// VoiceRecorder records a fixed-length mono utterance.
type VoiceRecorder interface {
	// CaptureAudio returns [ErrCaptureCancelled] when the user aborts or ctx
	// is cancelled.
	CaptureAudio(ctx context.Context, duration time.Duration, sampleRate int) (models.AudioSample, error)
}

// VoiceEncoder turns an utterance into a speaker embedding.
type VoiceEncoder interface {
	ExtractVoiceEmbedding(ctx context.Context, sample models.AudioSample) (models.VoiceTemplate, error)
}

// Sensors groups the external collaborators consulted by the access gate
// and the enrollment flow.
type Sensors struct {
	FaceCapturer  FaceCapturer
	FaceEncoder   FaceEncoder
	FaceMatcher   FaceMatcher
	VoiceRecorder VoiceRecorder
	VoiceEncoder  VoiceEncoder
}
