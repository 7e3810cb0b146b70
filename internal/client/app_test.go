package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/red-box/internal/capture"
	"github.com/MKhiriev/red-box/internal/config"
	"github.com/MKhiriev/red-box/internal/service"
	"github.com/MKhiriev/red-box/internal/wav"
	"github.com/MKhiriev/red-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

var (
	ownerVoice    = models.AudioSample{SampleRate: 44100, Channels: 1, Samples: []int16{10, 20, 30, 40}}
	impostorVoice = models.AudioSample{SampleRate: 44100, Channels: 1, Samples: []int16{-5, 5, -5, 5}}
)

// fakeDevices stands in for the camera, the microphone and both embedding
// models. The voice model maps the owner's recording to {1, 0} and anything
// else to {0, 1}.
type fakeDevices struct {
	speaker models.AudioSample
}

func (d *fakeDevices) Run(_ context.Context, argv []string) ([]byte, error) {
	switch argv[0] {
	case "cam":
		return nil, os.WriteFile(argv[1], []byte("\xFF\xD8\xFF\xE0fake"), 0o600)
	case "face":
		return []byte("[0.1, 0.2, 0.3]"), nil
	case "rec":
		var buf bytes.Buffer
		if err := wav.Encode(&buf, d.speaker); err != nil {
			return nil, err
		}
		return nil, os.WriteFile(argv[1], buf.Bytes(), 0o600)
	case "voice":
		data, err := os.ReadFile(argv[1])
		if err != nil {
			return nil, err
		}
		s, err := wav.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if slices.Equal(s.Samples, ownerVoice.Samples) {
			return []byte("[1, 0]"), nil
		}
		return []byte("[0, 1]"), nil
	}
	return nil, capture.ErrNoCommand
}

func testConfig(vaultDir string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{LogLevel: "info", MaxAttempts: 2},
		Storage: config.Storage{
			VaultDir:   vaultDir,
			KeyBackend: config.KeyBackendFile,
		},
		Biometrics: config.Biometrics{
			VoiceThreshold:  0.8,
			FaceTolerance:   0.6,
			VoiceDuration:   time.Second,
			SampleRate:      44100,
			CaptureRetries:  1,
			FaceCaptureCmd:  "cam {out}",
			FaceExtractCmd:  "face {in}",
			VoiceRecordCmd:  "rec {out}",
			VoiceExtractCmd: "voice {in}",
		},
	}
}

func newTestApp(t *testing.T, cfg *config.StructuredConfig, devices *fakeDevices, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := NewApp(context.Background(), cfg, Options{
		In:         strings.NewReader(input),
		Out:        &out,
		Runner:     devices,
		RestoreDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, &out
}

func TestNewApp_CreatesVaultLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "red_box_vault")
	a, _ := newTestApp(t, testConfig(root), &fakeDevices{speaker: ownerVoice}, "")

	p := a.Paths()
	for _, path := range []string{p.KeyFile, p.AuditDSN, p.LogFile} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}

	info, err := os.Stat(p.KeyFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewApp_KeyIsStableAcrossRestarts(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)

	a, _ := newTestApp(t, cfg, &fakeDevices{speaker: ownerVoice}, "")
	first, err := os.ReadFile(a.Paths().KeyFile)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, _ := newTestApp(t, cfg, &fakeDevices{speaker: ownerVoice}, "")
	second, err := os.ReadFile(b.Paths().KeyFile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewApp_KeyringBackend(t *testing.T) {
	keyring.MockInit()

	root := t.TempDir()
	cfg := testConfig(root)
	cfg.Storage.KeyBackend = config.KeyBackendKeyring

	a, _ := newTestApp(t, cfg, &fakeDevices{speaker: ownerVoice}, "")
	_, err := os.Stat(a.Paths().KeyFile)
	assert.True(t, os.IsNotExist(err), "keyring backend must not write a key file")
}

func TestNewApp_UnknownKeyBackend(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Storage.KeyBackend = "hsm"

	_, err := NewApp(context.Background(), cfg, Options{In: strings.NewReader(""), Out: &bytes.Buffer{}, Runner: &fakeDevices{}})
	assert.ErrorIs(t, err, ErrUnknownKeyBackend)
}

// TestApp_EndToEnd enrolls, unlocks, adds and retrieves a file, then lets an
// impostor destroy an entry.
func TestApp_EndToEnd(t *testing.T) {
	ctx := context.Background()
	devices := &fakeDevices{speaker: ownerVoice}

	// one Enter per face capture: enrollment, open, retrieve, two failed
	// retrieves
	a, out := newTestApp(t, testConfig(t.TempDir()), devices, strings.Repeat("\n", 5))
	s := a.Session()

	require.NoError(t, s.Open(ctx))
	require.True(t, s.Unlocked())

	st, err := s.EnrollmentStatus(ctx)
	require.NoError(t, err)
	assert.True(t, st.Complete())

	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o600))
	_, err = s.Add(ctx, src)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(a.Paths().EntriesDir, "notes.txt.enc"))
	require.NoError(t, err)

	dest, err := s.Retrieve(ctx, "notes.txt")
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	require.NoError(t, os.Remove(dest))

	devices.speaker = impostorVoice
	_, err = s.Retrieve(ctx, "notes.txt.enc")
	assert.ErrorIs(t, err, service.ErrUnauthorizedAccess)
	assert.NotErrorIs(t, err, service.ErrVoiceMismatch)
	assert.False(t, s.Unlocked())

	_, err = os.Stat(filepath.Join(a.Paths().EntriesDir, "notes.txt.enc"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err))

	events, err := s.Audit(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, models.OutcomeDestroyed, events[0].Outcome)

	assert.Contains(t, out.String(), "Unauthorized access detected!")
}
