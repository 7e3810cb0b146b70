// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/config"
	"github.com/MKhiriev/red-box/internal/logger"
)

// Storages groups every persistent store of one vault so it can be passed
// to the service layer as a single value.
type Storages struct {
	Enrollment EnrollmentStore
	Entries    EntryStore
	Audit      AuditRepository

	db *DB
}

// NewStorages initialises the storage layer for the vault laid out by
// paths:
//  1. Creates the vault directory with mode 0700.
//  2. Opens the SQLite audit database and runs pending migrations.
//  3. Wires the file-backed enrollment and entry stores.
func NewStorages(ctx context.Context, paths config.VaultPaths, voiceEncoder biometric.VoiceEncoder, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("func", "NewStorages").Str("vault", paths.Root).Msg("creating new storages...")

	if err := ensureDir(paths.Root); err != nil {
		return nil, err
	}

	db, err := NewConnectSQLite(ctx, paths.AuditDSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Enrollment: NewEnrollmentStore(paths.FaceTemplate, paths.VoiceSample, voiceEncoder, log),
		Entries:    NewEntryStore(paths.EntriesDir, log),
		Audit:      NewAuditRepository(db, log),
		db:         db,
	}, nil
}

// Close releases the audit database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
