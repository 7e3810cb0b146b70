package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/internal/capture"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/mock"
	"github.com/MKhiriev/red-box/internal/presenter"
	"github.com/MKhiriev/red-box/internal/service"
	"github.com/MKhiriev/red-box/internal/store"
	"github.com/MKhiriev/red-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var enrolled = models.EnrollmentStatus{Face: true, Voice: true}

type sessionFixture struct {
	session  *Session
	vault    *mock.MockVaultManager
	enroller *mock.MockEnroller
	out      *bytes.Buffer
}

// newTestSession wires a session over mocked services; input is
// the text the user types
func newTestSession(t *testing.T, ctrl *gomock.Controller, input string) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		vault:    mock.NewMockVaultManager(ctrl),
		enroller: mock.NewMockEnroller(ctrl),
		out:      &bytes.Buffer{},
	}
	f.session = NewSession(f.vault, f.enroller, presenter.NewConsole(f.out),
		capture.NewPrompter(strings.NewReader(input), io.Discard), "/restore", logger.Nop())
	return f
}

func (f *sessionFixture) unlock(ctx context.Context) {
	f.enroller.EXPECT().Status(ctx).Return(enrolled, nil)
	f.vault.EXPECT().Open(ctx).Return(nil)
}

func TestParseFactor(t *testing.T) {
	tests := []struct {
		in      string
		want    Factor
		wantErr bool
	}{
		{"face", FactorFace, false},
		{"Voice", FactorVoice, false},
		{"all", FactorAll, false},
		{"", FactorAll, false},
		{"iris", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFactor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFactor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_AddAndListNeedUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	_, err := f.session.Add(ctx, "notes.txt")
	assert.ErrorIs(t, err, service.ErrVaultLocked)
	_, err = f.session.List(ctx)
	assert.ErrorIs(t, err, service.ErrVaultLocked)

	f.unlock(ctx)
	require.NoError(t, f.session.Open(ctx))
	assert.True(t, f.session.Unlocked())

	entry := models.VaultEntry{Name: "notes.txt.enc", OriginalName: "notes.txt"}
	f.vault.EXPECT().AddFile(ctx, "notes.txt").Return(entry, nil)
	f.vault.EXPECT().ListFiles(ctx).Return([]models.VaultEntry{entry}, nil)

	got, err := f.session.Add(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	list, err := f.session.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSession_OpenDeniedStaysLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.enroller.EXPECT().Status(ctx).Return(enrolled, nil)
	f.vault.EXPECT().Open(ctx).Return(fmt.Errorf("%w: %w", service.ErrAccessDenied, service.ErrFaceMismatch))

	assert.ErrorIs(t, f.session.Open(ctx), service.ErrAccessDenied)
	assert.False(t, f.session.Unlocked())
}

func TestSession_OpenEnrollsMissingFactors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	gomock.InOrder(
		f.enroller.EXPECT().Status(ctx).Return(models.EnrollmentStatus{Face: true}, nil),
		f.enroller.EXPECT().EnrollVoice(ctx).Return(nil),
		f.vault.EXPECT().Open(ctx).Return(nil),
	)

	require.NoError(t, f.session.Open(ctx))
	assert.Contains(t, f.out.String(), app.MsgStartEnrollment)
}

func TestSession_OpenEnrollmentCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.enroller.EXPECT().Status(ctx).Return(models.EnrollmentStatus{}, nil)
	f.enroller.EXPECT().EnrollFace(ctx).Return(service.ErrCaptureCancelled)

	assert.ErrorIs(t, f.session.Open(ctx), service.ErrCaptureCancelled)
	assert.False(t, f.session.Unlocked())
}

func TestSession_ReEnrollNeedsUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.enroller.EXPECT().Status(ctx).Return(enrolled, nil)
	assert.ErrorIs(t, f.session.Enroll(ctx, FactorFace), service.ErrVaultLocked)

	f.unlock(ctx)
	require.NoError(t, f.session.Open(ctx))

	f.enroller.EXPECT().Status(ctx).Return(enrolled, nil)
	f.enroller.EXPECT().EnrollFace(ctx).Return(nil)
	f.enroller.EXPECT().EnrollVoice(ctx).Return(nil)
	require.NoError(t, f.session.Enroll(ctx, FactorAll))
}

func TestSession_EnrollPartialVaultWithoutUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.enroller.EXPECT().Status(ctx).Return(models.EnrollmentStatus{Face: true}, nil)
	f.enroller.EXPECT().EnrollVoice(ctx).Return(nil)

	require.NoError(t, f.session.Enroll(ctx, FactorVoice))
}

func TestSession_DestructiveDenialLocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.unlock(ctx)
	require.NoError(t, f.session.Open(ctx))

	f.vault.EXPECT().RetrieveFile(ctx, "report.txt.enc", "/restore").
		Return("", fmt.Errorf("%w: %w", service.ErrUnauthorizedAccess, service.ErrVoiceMismatch))

	_, err := f.session.Retrieve(ctx, "report.txt.enc")
	assert.ErrorIs(t, err, service.ErrUnauthorizedAccess)
	assert.False(t, f.session.Unlocked())
}

func TestSession_RetrieveAndDeleteAlwaysChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	// a locked session may still retrieve and delete: the vault manager
	// runs its own verification
	f.vault.EXPECT().RetrieveFile(ctx, "a.txt", "/restore").Return("/restore/a.txt", nil)
	f.vault.EXPECT().DeleteFile(ctx, "b.txt").Return(nil)

	dest, err := f.session.Retrieve(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/restore/a.txt", dest)
	require.NoError(t, f.session.Delete(ctx, "b.txt"))
}

func TestSession_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.vault.EXPECT().AuditTrail(ctx, store.DefaultAuditListLimit).Return(nil, nil)
	_, err := f.session.Audit(ctx, 0)
	require.NoError(t, err)
}

func TestSession_Shell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, strings.Join([]string{
		"list",
		"open",
		"",
		"add /home/me/notes.txt",
		"ls",
		"retrieve ghost",
		"audit 5",
		"frobnicate",
		"exit",
		"list",
	}, "\n"))
	ctx := context.Background()

	entry := models.VaultEntry{Name: "notes.txt.enc", OriginalName: "notes.txt"}
	f.enroller.EXPECT().Status(ctx).Return(enrolled, nil)
	f.vault.EXPECT().Open(ctx).Return(nil)
	f.vault.EXPECT().AddFile(ctx, "/home/me/notes.txt").Return(entry, nil)
	// exactly once: the first list runs locked and the last comes after exit
	f.vault.EXPECT().ListFiles(ctx).Return([]models.VaultEntry{entry}, nil).Times(1)
	f.vault.EXPECT().RetrieveFile(ctx, "ghost", "/restore").Return("", store.ErrEntryNotFound)
	f.vault.EXPECT().AuditTrail(ctx, 5).Return([]models.AuditEvent{
		{Operation: models.OperationOpen, Attempt: 1, Outcome: models.OutcomeGranted},
	}, nil)

	require.NoError(t, f.session.Shell(ctx))

	out := f.out.String()
	assert.Contains(t, out, app.MsgVaultLocked)
	assert.Contains(t, out, "notes.txt.enc")
	assert.Contains(t, out, store.ErrEntryNotFound.Error())
	assert.Contains(t, out, "granted")
	assert.Contains(t, out, `Unknown command "frobnicate"`)
}

func TestSession_ShellEndOfInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "help\n")
	require.NoError(t, f.session.Shell(context.Background()))
	assert.Contains(t, f.out.String(), "retrieve <name>")
}

func TestReportError_SkipsAnnouncedVerdicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSession(t, ctrl, "")
	ctx := context.Background()

	f.session.ReportError(ctx, fmt.Errorf("%w: %w", service.ErrUnauthorizedAccess, service.ErrFaceMismatch))
	f.session.ReportError(ctx, service.ErrCaptureCancelled)
	f.session.ReportError(ctx, nil)
	assert.Empty(t, f.out.String())

	f.session.ReportError(ctx, service.ErrDestinationExists)
	assert.Contains(t, f.out.String(), service.ErrDestinationExists.Error())
}
