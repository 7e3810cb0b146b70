// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Embedding is a fixed-dimension feature vector produced by an external
// biometric extraction model. Its values are opaque to the vault.
type Embedding []float64

// Dim returns the number of components of the embedding.
func (e Embedding) Dim() int {
	return len(e)
}

// FaceTemplate is the embedding of a single face. At most one enrolled
// FaceTemplate exists per vault.
type FaceTemplate struct {
	Vector Embedding
}

// VoiceTemplate is the embedding of a single voice utterance. The enrolled
// VoiceTemplate is never stored: it is re-derived from the retained raw
// enrollment [AudioSample] every time it is loaded.
type VoiceTemplate struct {
	Vector Embedding
}

// ImageSample is a single captured camera frame.
type ImageSample struct {
	// Data holds the encoded image bytes as produced by the capture device.
	Data []byte
	// Format is the image container format, e.g. "jpeg" or "png".
	Format string
}

// AudioSample is a block of 16-bit PCM audio.
//
// Samples are interleaved when Channels > 1.
type AudioSample struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames returns the number of sample frames (samples per channel).
func (a AudioSample) Frames() int {
	if a.Channels <= 0 {
		return 0
	}
	return len(a.Samples) / a.Channels
}

// EnrollmentStatus reports which biometric factors are enrolled.
type EnrollmentStatus struct {
	Face  bool
	Voice bool
}

// Complete reports whether both factors are enrolled. Gated operations are
// only possible on a complete enrollment.
func (s EnrollmentStatus) Complete() bool {
	return s.Face && s.Voice
}
