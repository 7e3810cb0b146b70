// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/red-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EnrollmentStore keeps the single enrolled identity of a vault.
type EnrollmentStore interface {
	// SaveFaceTemplate stores t, replacing any previous face template.
	SaveFaceTemplate(ctx context.Context, t models.FaceTemplate) error
	// LoadFaceTemplate returns ok=false when no face is enrolled.
	LoadFaceTemplate(ctx context.Context) (t models.FaceTemplate, ok bool, err error)

	// SaveVoiceEnrollment stores the raw enrollment recording.
	SaveVoiceEnrollment(ctx context.Context, sample models.AudioSample) error
	// LoadVoiceTemplate derives the enrolled voice template from the stored
	// recording. It returns ok=false when no voice is enrolled.
	LoadVoiceTemplate(ctx context.Context) (t models.VoiceTemplate, ok bool, err error)

	// Status reports which factors are enrolled without loading them.
	Status(ctx context.Context) (models.EnrollmentStatus, error)
	// IsFullyEnrolled reports whether both factors are enrolled.
	IsFullyEnrolled(ctx context.Context) (bool, error)
}

// EntryStore manages the directory of encrypted entries. Names are stored
// file names including the ".enc" suffix.
type EntryStore interface {
	// Put stores a new entry. It returns [ErrEntryExists] instead of
	// overwriting.
	Put(ctx context.Context, name string, blob []byte) error
	// Get returns the blob of an entry or [ErrEntryNotFound].
	Get(ctx context.Context, name string) ([]byte, error)
	// Remove deletes an entry or returns [ErrEntryNotFound].
	Remove(ctx context.Context, name string) error
	// Exists reports whether an entry is present.
	Exists(ctx context.Context, name string) (bool, error)
	// List returns all entries sorted by name.
	List(ctx context.Context) ([]models.VaultEntry, error)
}

// AuditRepository persists [models.AuditEvent] records.
type AuditRepository interface {
	Record(ctx context.Context, event models.AuditEvent) error
	// List returns up to limit most recent events, newest first.
	List(ctx context.Context, limit int) ([]models.AuditEvent, error)
}
