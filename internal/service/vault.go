// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/internal/crypto"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/store"
	"github.com/MKhiriev/red-box/internal/utils"
	"github.com/MKhiriev/red-box/models"
)

// DefaultMaxAttempts is the number of consecutive verifications a retrieve
// or delete gets before its target is destroyed.
const DefaultMaxAttempts = 2

// vaultManager is the private implementation of [VaultManager].
type vaultManager struct {
	gate     Authorizer
	cipher   crypto.CipherManager
	entries  store.EntryStore
	audit    store.AuditRepository
	notifier Notifier
	logger   *logger.Logger

	maxAttempts int
	sessionID   string
	now         func() time.Time
	newID       func() string
}

// NewVaultManager returns a [VaultManager]. Every manager is one session:
// all audit events it records share a fresh session ID. maxAttempts below 1
// falls back to [DefaultMaxAttempts].
func NewVaultManager(
	gate Authorizer,
	cipher crypto.CipherManager,
	entries store.EntryStore,
	audit store.AuditRepository,
	notifier Notifier,
	maxAttempts int,
	log *logger.Logger,
) VaultManager {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	ids := utils.NewUUIDGenerator()

	return &vaultManager{
		gate:        gate,
		cipher:      cipher,
		entries:     entries,
		audit:       audit,
		notifier:    notifier,
		logger:      log,
		maxAttempts: maxAttempts,
		sessionID:   ids.Generate(),
		now:         time.Now,
		newID:       ids.Generate,
	}
}

// Open implements [VaultManager].
func (m *vaultManager) Open(ctx context.Context) error {
	log := m.logger.Ctx(ctx)

	res, err := m.gate.Authorize(ctx, models.OperationOpen)
	if err != nil {
		log.Err(err).Str("func", "vaultManager.Open").Msg("verification failed")
		return fmt.Errorf("open vault: %w", err)
	}

	if res.Granted() {
		m.record(ctx, res, "", 1, models.OutcomeGranted)
		notify(ctx, m.notifier, models.NoticeSuccess, app.TitleAccessGranted, app.MsgAccessGranted)
		return nil
	}

	m.record(ctx, res, "", 1, models.OutcomeDenied)
	notify(ctx, m.notifier, models.NoticeError, app.TitleAccessDenied, reasonMessage(res.Reason))

	switch res.Reason {
	case models.ReasonNotEnrolled, models.ReasonCaptureCancelled:
		return reasonError(res.Reason)
	default:
		return fmt.Errorf("%w: %w", ErrAccessDenied, reasonError(res.Reason))
	}
}

// guard is the single bounded-retry policy shared by every gated
// operation. It runs up to maxAttempts verifications and calls action on
// the first grant. When the final attempt is denied, target (if any) is
// removed without ever being decrypted.
//
// Cancellation and missing enrollment abort immediately: they consume no
// attempt and never destroy anything. Infrastructure errors abort the same
// way.
func (m *vaultManager) guard(ctx context.Context, op models.Operation, target string, action func(ctx context.Context) error) error {
	log := &logger.Logger{Logger: m.logger.Ctx(ctx).With().
		Str("operation", string(op)).
		Str("entry", target).
		Str("session_id", m.sessionID).
		Logger()}

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		res, err := m.gate.Authorize(ctx, op)
		if err != nil {
			log.Err(err).Str("func", "vaultManager.guard").Int("attempt", attempt).Msg("verification failed")
			return fmt.Errorf("%s %s: %w", op, target, err)
		}

		if res.Granted() {
			m.record(ctx, res, target, attempt, models.OutcomeGranted)
			log.Info().Str("func", "vaultManager.guard").Int("attempt", attempt).Msg("access granted")
			return action(ctx)
		}

		if !res.Reason.CountsAsFailure() {
			m.record(ctx, res, target, attempt, models.OutcomeDenied)
			notify(ctx, m.notifier, models.NoticeError, app.TitleError, reasonMessage(res.Reason))
			log.Info().Str("func", "vaultManager.guard").Str("reason", string(res.Reason)).Msg("operation aborted")
			return reasonError(res.Reason)
		}

		if remaining := m.maxAttempts - attempt; remaining > 0 {
			m.record(ctx, res, target, attempt, models.OutcomeDenied)
			notifyf(ctx, m.notifier, models.NoticeWarning, app.TitleWarning,
				"%s "+app.MsgAttemptsRemaining, reasonMessage(res.Reason), remaining, plural(remaining, "attempt", "attempts"))
			log.Warn().Str("func", "vaultManager.guard").Int("attempt", attempt).Int("remaining", remaining).
				Str("reason", string(res.Reason)).Msg("verification denied")
			continue
		}

		return m.destroy(ctx, log, res, target, attempt)
	}

	// unreachable: maxAttempts >= 1 and the last iteration always returns
	return ErrAccessDenied
}

// destroy executes the destructive denial after the final failed attempt.
// The returned error and the notice carry no factor: which one failed is
// kept in the audit event and the log.
func (m *vaultManager) destroy(ctx context.Context, log *logger.Logger, res models.AccessAttempt, target string, attempt int) error {
	if target == "" {
		m.record(ctx, res, target, attempt, models.OutcomeDenied)
		notify(ctx, m.notifier, models.NoticeError, app.TitleAccessDenied, app.MsgAccessDenied)
		return ErrAccessDenied
	}

	err := m.entries.Remove(ctx, target)
	if err != nil && !errors.Is(err, store.ErrEntryNotFound) {
		log.Err(err).Str("func", "vaultManager.destroy").Str("reason", string(res.Reason)).
			Msg("error destroying entry after unauthorized access")
		m.record(ctx, res, target, attempt, models.OutcomeDenied)
		notifyf(ctx, m.notifier, models.NoticeError, app.TitleAccessDenied,
			app.MsgUnauthorizedAccess+"\n\n"+app.MsgDestroyFailed, err)
		return errors.Join(ErrUnauthorizedAccess, err)
	}

	m.record(ctx, res, target, attempt, models.OutcomeDestroyed)
	log.Warn().Str("func", "vaultManager.destroy").Int("attempt", attempt).Str("reason", string(res.Reason)).
		Msg("unauthorized access detected, entry destroyed")
	notifyf(ctx, m.notifier, models.NoticeError, app.TitleAccessDenied,
		app.MsgUnauthorizedAccess+"\n\n"+app.MsgDestroyedEntry, target)

	return ErrUnauthorizedAccess
}

// record writes an audit event. Audit failures are logged and never block
// the vault operation.
func (m *vaultManager) record(ctx context.Context, res models.AccessAttempt, target string, attempt int, outcome models.AuditOutcome) {
	if m.audit == nil {
		return
	}

	ev := models.AuditEvent{
		ID:         m.newID(),
		SessionID:  m.sessionID,
		Operation:  res.Operation,
		Target:     target,
		Attempt:    attempt,
		Outcome:    outcome,
		Reason:     res.Reason,
		OccurredAt: m.now(),
	}
	if err := m.audit.Record(ctx, ev); err != nil {
		m.logger.Ctx(ctx).Err(err).Str("func", "vaultManager.record").Str("event_id", ev.ID).Msg("error recording audit event")
	}
}

// resolveEntry maps a typed name to a stored entry. "report.txt" means
// "report.txt.enc". A name already ending in .enc is tried as is first and
// then with the suffix appended, so an added file literally named "x.enc"
// (stored as "x.enc.enc") is found by either spelling.
func (m *vaultManager) resolveEntry(ctx context.Context, name string) (string, error) {
	candidates := []string{store.EntryName(name)}
	if strings.HasSuffix(name, store.EntrySuffix) {
		candidates = []string{name, store.EntryName(name)}
	}

	var firstErr error
	for _, c := range candidates {
		if err := store.ValidateEntryName(c); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		ok, err := m.entries.Exists(ctx, c)
		if err != nil {
			return "", err
		}
		if ok {
			return c, nil
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("%w: %s", store.ErrEntryNotFound, c)
		}
	}
	return "", firstErr
}

// AddFile implements [VaultManager]. It is not gated: the caller decides
// whether the session is unlocked.
func (m *vaultManager) AddFile(ctx context.Context, path string) (models.VaultEntry, error) {
	log := m.logger.Ctx(ctx)

	info, err := os.Stat(path)
	if err != nil {
		log.Err(err).Str("func", "vaultManager.AddFile").Str("path", path).Msg("error reading source file")
		return models.VaultEntry{}, fmt.Errorf("%w: stat %s: %w", store.ErrFileIO, path, err)
	}
	if !info.Mode().IsRegular() {
		return models.VaultEntry{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	name := store.EntryName(filepath.Base(path))
	if err := store.ValidateEntryName(name); err != nil {
		return models.VaultEntry{}, err
	}

	exists, err := m.entries.Exists(ctx, name)
	if err != nil {
		return models.VaultEntry{}, err
	}
	if exists {
		return models.VaultEntry{}, fmt.Errorf("%w: %s", store.ErrEntryExists, name)
	}

	plaintext, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "vaultManager.AddFile").Str("path", path).Msg("error reading source file")
		return models.VaultEntry{}, fmt.Errorf("%w: read %s: %w", store.ErrFileIO, path, err)
	}

	blob, err := m.cipher.Encrypt(plaintext)
	if err != nil {
		log.Err(err).Str("func", "vaultManager.AddFile").Msg("error encrypting file")
		return models.VaultEntry{}, fmt.Errorf("encrypt %s: %w", path, err)
	}

	if err := m.entries.Put(ctx, name, blob); err != nil {
		return models.VaultEntry{}, fmt.Errorf("store %s: %w", name, err)
	}

	entry := models.VaultEntry{
		Name:         name,
		OriginalName: store.OriginalName(name),
		Size:         int64(len(blob)),
		ModifiedAt:   m.now(),
	}

	// the plaintext source is removed on purpose once the ciphertext is safe
	if err := os.Remove(path); err != nil {
		log.Err(err).Str("func", "vaultManager.AddFile").Str("path", path).Msg("entry stored but source could not be removed")
		return entry, fmt.Errorf("%w: remove source %s: %w", store.ErrFileIO, path, err)
	}

	log.Info().Str("func", "vaultManager.AddFile").Str("entry", name).Msg("file added to vault")
	notifyf(ctx, m.notifier, models.NoticeSuccess, app.TitleSuccess, app.MsgFileAdded, entry.OriginalName)
	return entry, nil
}

// ListFiles implements [VaultManager].
func (m *vaultManager) ListFiles(ctx context.Context) ([]models.VaultEntry, error) {
	entries, err := m.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// RetrieveFile implements [VaultManager].
func (m *vaultManager) RetrieveFile(ctx context.Context, name, destDir string) (string, error) {
	name, err := m.resolveEntry(ctx, name)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, store.OriginalName(name))
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	err = m.guard(ctx, models.OperationRetrieve, name, func(ctx context.Context) error {
		blob, err := m.entries.Get(ctx, name)
		if err != nil {
			return err
		}

		plaintext, err := m.cipher.Decrypt(blob)
		if err != nil {
			m.logger.Ctx(ctx).Err(err).Str("func", "vaultManager.RetrieveFile").Str("entry", name).Msg("error decrypting entry")
			return fmt.Errorf("decrypt %s: %w", name, err)
		}

		return writeNewFile(dest, plaintext)
	})
	if err != nil {
		return "", err
	}

	notifyf(ctx, m.notifier, models.NoticeSuccess, app.TitleSuccess, app.MsgFileRetrieved, dest)
	return dest, nil
}

// DeleteFile implements [VaultManager].
func (m *vaultManager) DeleteFile(ctx context.Context, name string) error {
	name, err := m.resolveEntry(ctx, name)
	if err != nil {
		return err
	}

	err = m.guard(ctx, models.OperationDelete, name, func(ctx context.Context) error {
		return m.entries.Remove(ctx, name)
	})
	if err != nil {
		return err
	}

	notify(ctx, m.notifier, models.NoticeSuccess, app.TitleDeleted, app.MsgFileDeleted)
	return nil
}

// AuditTrail implements [VaultManager].
func (m *vaultManager) AuditTrail(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	if m.audit == nil {
		return []models.AuditEvent{}, nil
	}
	return m.audit.List(ctx, limit)
}

// writeNewFile creates path exclusively with mode 0600.
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, path)
	}
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", store.ErrFileIO, path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: write %s: %w", store.ErrFileIO, path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: close %s: %w", store.ErrFileIO, path, err)
	}
	return nil
}
