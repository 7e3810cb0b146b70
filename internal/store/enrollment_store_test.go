package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/mock"
	"github.com/MKhiriev/red-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEnrollmentStore(t *testing.T, ctrl *gomock.Controller) (EnrollmentStore, *mock.MockVoiceEncoder, string) {
	t.Helper()
	dir := t.TempDir()
	enc := mock.NewMockVoiceEncoder(ctrl)
	s := NewEnrollmentStore(
		filepath.Join(dir, "face_encoding.dat"),
		filepath.Join(dir, "voice_enrollment.wav"),
		enc,
		logger.Nop(),
	)
	return s, enc, dir
}

// ── Face ─────────────────────────────────────────────────────────────────────

func TestEnrollmentStore_FaceRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, dir := newTestEnrollmentStore(t, ctrl)
	ctx := context.Background()

	_, ok, err := s.LoadFaceTemplate(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	face := models.FaceTemplate{Vector: models.Embedding{0.1, -0.2, 0.3}}
	require.NoError(t, s.SaveFaceTemplate(ctx, face))

	info, err := os.Stat(filepath.Join(dir, "face_encoding.dat"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, ok, err := s.LoadFaceTemplate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, face, got)

	// re-enrollment overwrites
	other := models.FaceTemplate{Vector: models.Embedding{1, 1, 1, 1}}
	require.NoError(t, s.SaveFaceTemplate(ctx, other))
	got, _, err = s.LoadFaceTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestEnrollmentStore_FaceMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, dir := newTestEnrollmentStore(t, ctrl)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "face_encoding.dat"), []byte("garbage"), 0o600))

	_, ok, err := s.LoadFaceTemplate(context.Background())
	assert.ErrorIs(t, err, ErrMalformedTemplate)
	assert.False(t, ok)
}

func TestEnrollmentStore_SaveEmptyFace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _ := newTestEnrollmentStore(t, ctrl)
	err := s.SaveFaceTemplate(context.Background(), models.FaceTemplate{})
	assert.ErrorIs(t, err, ErrMalformedTemplate)
}

// ── Voice ────────────────────────────────────────────────────────────────────

func TestEnrollmentStore_VoiceDerivedOnLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, enc, _ := newTestEnrollmentStore(t, ctrl)
	ctx := context.Background()

	_, ok, err := s.LoadVoiceTemplate(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	sample := models.AudioSample{SampleRate: 44100, Channels: 1, Samples: []int16{1, 2, 3, -4}}
	require.NoError(t, s.SaveVoiceEnrollment(ctx, sample))

	want := models.VoiceTemplate{Vector: models.Embedding{0.5, 0.5}}
	enc.EXPECT().ExtractVoiceEmbedding(ctx, sample).Return(want, nil)

	got, ok, err := s.LoadVoiceTemplate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestEnrollmentStore_VoiceEncoderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, enc, _ := newTestEnrollmentStore(t, ctrl)
	ctx := context.Background()

	require.NoError(t, s.SaveVoiceEnrollment(ctx, models.AudioSample{SampleRate: 8000, Channels: 1, Samples: []int16{1}}))
	enc.EXPECT().ExtractVoiceEmbedding(ctx, gomock.Any()).Return(models.VoiceTemplate{}, errors.New("model crashed"))

	_, ok, err := s.LoadVoiceTemplate(ctx)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestEnrollmentStore_VoiceMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, dir := newTestEnrollmentStore(t, ctrl)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "voice_enrollment.wav"), []byte("RIFF"), 0o600))

	_, _, err := s.LoadVoiceTemplate(context.Background())
	assert.ErrorIs(t, err, ErrMalformedTemplate)
}

func TestEnrollmentStore_SaveEmptyVoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _ := newTestEnrollmentStore(t, ctrl)
	err := s.SaveVoiceEnrollment(context.Background(), models.AudioSample{SampleRate: 44100, Channels: 1})
	assert.ErrorIs(t, err, ErrMalformedTemplate)
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestEnrollmentStore_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _ := newTestEnrollmentStore(t, ctrl)
	ctx := context.Background()

	full, err := s.IsFullyEnrolled(ctx)
	require.NoError(t, err)
	assert.False(t, full)

	require.NoError(t, s.SaveFaceTemplate(ctx, models.FaceTemplate{Vector: models.Embedding{1}}))
	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatus{Face: true}, status)
	full, err = s.IsFullyEnrolled(ctx)
	require.NoError(t, err)
	assert.False(t, full)

	require.NoError(t, s.SaveVoiceEnrollment(ctx, models.AudioSample{SampleRate: 44100, Channels: 1, Samples: []int16{7}}))
	full, err = s.IsFullyEnrolled(ctx)
	require.NoError(t, err)
	assert.True(t, full)
}
