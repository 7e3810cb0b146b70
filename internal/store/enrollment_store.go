// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/wav"
	"github.com/MKhiriev/red-box/models"
)

type fileEnrollmentStore struct {
	facePath  string
	voicePath string
	encoder   biometric.VoiceEncoder
	logger    *logger.Logger
}

// NewEnrollmentStore returns an [EnrollmentStore] keeping the face template
// at facePath and the raw voice enrollment at voicePath. The voice template
// is re-derived with encoder on every load.
func NewEnrollmentStore(facePath, voicePath string, encoder biometric.VoiceEncoder, log *logger.Logger) EnrollmentStore {
	return &fileEnrollmentStore{
		facePath:  facePath,
		voicePath: voicePath,
		encoder:   encoder,
		logger:    log,
	}
}

func (s *fileEnrollmentStore) SaveFaceTemplate(ctx context.Context, t models.FaceTemplate) error {
	log := s.logger.Ctx(ctx)

	data, err := encodeFaceTemplate(t)
	if err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.SaveFaceTemplate").Msg("error encoding face template")
		return fmt.Errorf("encode face template: %w", err)
	}

	if err := writeFileAtomic(s.facePath, data); err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.SaveFaceTemplate").Msg("error writing face template")
		return err
	}

	log.Info().Str("func", "fileEnrollmentStore.SaveFaceTemplate").Int("dim", t.Vector.Dim()).Msg("face template saved")
	return nil
}

func (s *fileEnrollmentStore) LoadFaceTemplate(ctx context.Context) (models.FaceTemplate, bool, error) {
	log := s.logger.Ctx(ctx)

	data, ok, err := readFileIfExists(s.facePath)
	if err != nil || !ok {
		return models.FaceTemplate{}, false, err
	}

	t, err := decodeFaceTemplate(data)
	if err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.LoadFaceTemplate").Str("path", s.facePath).Msg("stored face template is malformed")
		return models.FaceTemplate{}, false, err
	}

	return t, true, nil
}

func (s *fileEnrollmentStore) SaveVoiceEnrollment(ctx context.Context, sample models.AudioSample) error {
	log := s.logger.Ctx(ctx)

	if len(sample.Samples) == 0 {
		return fmt.Errorf("%w: empty voice recording", ErrMalformedTemplate)
	}

	var buf bytes.Buffer
	if err := wav.Encode(&buf, sample); err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.SaveVoiceEnrollment").Msg("error encoding voice sample")
		return fmt.Errorf("encode voice enrollment: %w", err)
	}

	if err := writeFileAtomic(s.voicePath, buf.Bytes()); err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.SaveVoiceEnrollment").Msg("error writing voice sample")
		return err
	}

	log.Info().Str("func", "fileEnrollmentStore.SaveVoiceEnrollment").
		Int("sample_rate", sample.SampleRate).
		Int("frames", sample.Frames()).
		Msg("voice enrollment saved")
	return nil
}

func (s *fileEnrollmentStore) LoadVoiceTemplate(ctx context.Context) (models.VoiceTemplate, bool, error) {
	log := s.logger.Ctx(ctx)

	data, ok, err := readFileIfExists(s.voicePath)
	if err != nil || !ok {
		return models.VoiceTemplate{}, false, err
	}

	sample, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.LoadVoiceTemplate").Str("path", s.voicePath).Msg("stored voice enrollment is malformed")
		return models.VoiceTemplate{}, false, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}

	t, err := s.encoder.ExtractVoiceEmbedding(ctx, sample)
	if err != nil {
		log.Err(err).Str("func", "fileEnrollmentStore.LoadVoiceTemplate").Msg("error deriving enrolled voice template")
		return models.VoiceTemplate{}, false, fmt.Errorf("derive enrolled voice template: %w", err)
	}

	return t, true, nil
}

func (s *fileEnrollmentStore) Status(_ context.Context) (models.EnrollmentStatus, error) {
	face, err := fileExists(s.facePath)
	if err != nil {
		return models.EnrollmentStatus{}, err
	}
	voice, err := fileExists(s.voicePath)
	if err != nil {
		return models.EnrollmentStatus{}, err
	}

	return models.EnrollmentStatus{Face: face, Voice: voice}, nil
}

func (s *fileEnrollmentStore) IsFullyEnrolled(ctx context.Context) (bool, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Complete(), nil
}
