// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/service"
	"github.com/MKhiriev/red-box/internal/store"
	"github.com/MKhiriev/red-box/models"
)

// Factor names an enrollment target.
type Factor string

const (
	FactorFace  Factor = "face"
	FactorVoice Factor = "voice"
	FactorAll   Factor = "all"
)

// ParseFactor parses "face", "voice" or "all". An empty string means all.
func ParseFactor(s string) (Factor, error) {
	switch f := Factor(strings.ToLower(strings.TrimSpace(s))); f {
	case FactorFace, FactorVoice, FactorAll:
		return f, nil
	case "":
		return FactorAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFactor, s)
	}
}

const shellHelp = `Commands:
  add <path>         encrypt a file into the vault and delete the original
  list               list stored entries
  retrieve <name>    decrypt an entry into the restore directory
  delete <name>      delete an entry
  audit [n]          show the n most recent access events
  status             show enrollment status
  enroll [factor]    re-enroll face, voice or all
  open               verify again to unlock a locked session
  help               show this help
  exit               leave the vault`

// Session is one interactive use of the vault. It is not safe for
// concurrent use.
type Session struct {
	vault    service.VaultManager
	enroller service.Enroller
	ui       Presenter
	input    LineReader
	logger   *logger.Logger

	restoreDir string
	unlocked   bool
}

// NewSession returns a locked session. Retrieved files are restored into
// restoreDir.
func NewSession(vault service.VaultManager, enroller service.Enroller, ui Presenter, input LineReader, restoreDir string, log *logger.Logger) *Session {
	return &Session{
		vault:      vault,
		enroller:   enroller,
		ui:         ui,
		input:      input,
		logger:     log,
		restoreDir: restoreDir,
	}
}

// Unlocked reports whether the session passed a verification.
func (s *Session) Unlocked() bool {
	return s.unlocked
}

// EnsureEnrolled runs the first-time enrollment for every factor that is
// missing. It is a no-op on a fully enrolled vault.
func (s *Session) EnsureEnrolled(ctx context.Context) error {
	st, err := s.enroller.Status(ctx)
	if err != nil {
		return fmt.Errorf("enrollment status: %w", err)
	}
	if st.Complete() {
		return nil
	}

	s.ui.Notify(ctx, models.Notice{Level: models.NoticeInfo, Title: app.TitleFirstSetup, Text: app.MsgStartEnrollment})
	if !st.Face {
		if err := s.enroller.EnrollFace(ctx); err != nil {
			return err
		}
	}
	if !st.Voice {
		if err := s.enroller.EnrollVoice(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Open enrolls a new vault if needed and runs the single session
// verification. The session is unlocked on success.
func (s *Session) Open(ctx context.Context) error {
	if err := s.EnsureEnrolled(ctx); err != nil {
		return err
	}
	if err := s.vault.Open(ctx); err != nil {
		return err
	}

	s.unlocked = true
	s.logger.Ctx(ctx).Info().Str("func", "Session.Open").Msg("session unlocked")
	return nil
}

// Enroll (re-)enrolls factor. Replacing the identity of a fully enrolled
// vault requires an unlocked session.
func (s *Session) Enroll(ctx context.Context, factor Factor) error {
	st, err := s.enroller.Status(ctx)
	if err != nil {
		return fmt.Errorf("enrollment status: %w", err)
	}
	if st.Complete() && !s.unlocked {
		return service.ErrVaultLocked
	}

	if factor == FactorFace || factor == FactorAll {
		if err := s.enroller.EnrollFace(ctx); err != nil {
			return err
		}
	}
	if factor == FactorVoice || factor == FactorAll {
		if err := s.enroller.EnrollVoice(ctx); err != nil {
			return err
		}
	}
	return nil
}

// EnrollmentStatus reports which factors are enrolled.
func (s *Session) EnrollmentStatus(ctx context.Context) (models.EnrollmentStatus, error) {
	return s.enroller.Status(ctx)
}

// Add stores the file at path. Requires an unlocked session.
func (s *Session) Add(ctx context.Context, path string) (models.VaultEntry, error) {
	if !s.unlocked {
		return models.VaultEntry{}, service.ErrVaultLocked
	}
	return s.vault.AddFile(ctx, path)
}

// List returns the stored entries. Requires an unlocked session.
func (s *Session) List(ctx context.Context) ([]models.VaultEntry, error) {
	if !s.unlocked {
		return nil, service.ErrVaultLocked
	}
	return s.vault.ListFiles(ctx)
}

// Retrieve restores name into the restore directory after a fresh
// verification.
func (s *Session) Retrieve(ctx context.Context, name string) (string, error) {
	dest, err := s.vault.RetrieveFile(ctx, name, s.restoreDir)
	s.lockOnDestruction(err)
	return dest, err
}

// Delete removes name after a fresh verification.
func (s *Session) Delete(ctx context.Context, name string) error {
	err := s.vault.DeleteFile(ctx, name)
	s.lockOnDestruction(err)
	return err
}

// Audit returns the limit most recent audit events.
func (s *Session) Audit(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	if limit <= 0 {
		limit = store.DefaultAuditListLimit
	}
	return s.vault.AuditTrail(ctx, limit)
}

// lockOnDestruction locks the session after a destructive denial: whoever
// failed twice is not the person who unlocked it.
func (s *Session) lockOnDestruction(err error) {
	if errors.Is(err, service.ErrUnauthorizedAccess) {
		s.unlocked = false
	}
}

// Shell runs the interactive command loop until exit, end of input or
// cancellation of ctx.
func (s *Session) Shell(ctx context.Context) error {
	log := s.logger.Ctx(ctx)
	s.ui.Println(shellHelp)

	for {
		line, err := s.input.ReadLine(ctx, "redbox> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			s.ui.Println(shellHelp)
		case "add":
			_, err = s.Add(ctx, arg)
		case "list", "ls":
			var entries []models.VaultEntry
			if entries, err = s.List(ctx); err == nil {
				s.ui.Entries(entries)
			}
		case "retrieve", "get":
			_, err = s.Retrieve(ctx, arg)
		case "delete", "rm":
			err = s.Delete(ctx, arg)
		case "audit":
			err = s.shellAudit(ctx, arg)
		case "status":
			var st models.EnrollmentStatus
			if st, err = s.EnrollmentStatus(ctx); err == nil {
				s.ui.Status(st)
			}
		case "enroll":
			var f Factor
			if f, err = ParseFactor(arg); err == nil {
				err = s.Enroll(ctx, f)
			}
		case "open":
			err = s.Open(ctx)
		default:
			s.ui.Println("Unknown command " + strconv.Quote(cmd) + ". Type 'help'.")
			continue
		}

		if err != nil {
			log.Err(err).Str("func", "Session.Shell").Str("command", cmd).Msg("command failed")
			s.ReportError(ctx, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (s *Session) shellAudit(ctx context.Context, arg string) error {
	limit := 0
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return fmt.Errorf("audit: invalid count %q", arg)
		}
		limit = n
	}

	events, err := s.Audit(ctx, limit)
	if err != nil {
		return err
	}
	s.ui.AuditTrail(events)
	return nil
}

// ReportError shows err unless the service layer already told the user
// about it.
func (s *Session) ReportError(ctx context.Context, err error) {
	if err == nil || notified(err) {
		return
	}

	text := err.Error()
	if errors.Is(err, service.ErrVaultLocked) {
		text = app.MsgVaultLocked
	}
	s.ui.Notify(ctx, models.Notice{Level: models.NoticeError, Title: app.TitleError, Text: text})
}

// notified reports whether err is a verdict the services announced
// themselves.
func notified(err error) bool {
	for _, target := range []error{
		service.ErrUnauthorizedAccess,
		service.ErrAccessDenied,
		service.ErrNotEnrolled,
		service.ErrCaptureCancelled,
		service.ErrFaceMismatch,
		service.ErrVoiceMismatch,
		service.ErrNoFaceDetected,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
