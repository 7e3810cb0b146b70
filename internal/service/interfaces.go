// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/red-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authorizer runs one two-factor verification.
type Authorizer interface {
	// Authorize returns the finished attempt. A denial is a verdict, not an
	// error: err is only set for infrastructure failures, in which case the
	// attempt carries no verdict.
	Authorize(ctx context.Context, op models.Operation) (models.AccessAttempt, error)
}

// Notifier receives every user-facing message of the core.
type Notifier interface {
	Notify(ctx context.Context, n models.Notice)
}

// VaultManager is the storage-gating API of an open vault.
type VaultManager interface {
	// Open runs a single verification for a session. No retries, nothing is
	// destroyed.
	Open(ctx context.Context) error

	// AddFile encrypts the file at path into the vault and removes the
	// source.
	AddFile(ctx context.Context, path string) (models.VaultEntry, error)

	// ListFiles returns the stored entries without decrypting anything.
	ListFiles(ctx context.Context) ([]models.VaultEntry, error)

	// RetrieveFile verifies the user and restores the entry into destDir.
	// It returns the path of the restored file.
	RetrieveFile(ctx context.Context, name, destDir string) (string, error)

	// DeleteFile verifies the user and removes the entry.
	DeleteFile(ctx context.Context, name string) error

	// AuditTrail returns up to limit most recent audit events.
	AuditTrail(ctx context.Context, limit int) ([]models.AuditEvent, error)
}

// Enroller captures and stores the enrolled identity.
type Enroller interface {
	Status(ctx context.Context) (models.EnrollmentStatus, error)
	EnrollFace(ctx context.Context) error
	EnrollVoice(ctx context.Context) error
}
