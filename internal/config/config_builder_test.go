package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newParsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies the built-in defaults form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultVaultDir, cfg.Storage.VaultDir)
	assert.Equal(t, KeyBackendFile, cfg.Storage.KeyBackend)
	assert.Equal(t, 2, cfg.App.MaxAttempts)
	assert.Equal(t, 0.80, cfg.Biometrics.VoiceThreshold)
	assert.Equal(t, 0.6, cfg.Biometrics.FaceTolerance)
	assert.Equal(t, 5*time.Second, cfg.Biometrics.VoiceDuration)
	assert.Equal(t, 44100, cfg.Biometrics.SampleRate)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a zero config is
// rejected instead of silently used.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{VaultDir: "/first"}},
		&StructuredConfig{Storage: Storage{VaultDir: "/second"}, App: App{MaxAttempts: 5}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/first", cfg.Storage.VaultDir)
	assert.Equal(t, 5, cfg.App.MaxAttempts)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_NilFlagsUsesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultVaultDir, cfg.Storage.VaultDir)
}

// TestLoad_Precedence verifies flags beat env, env beats JSON, and JSON beats
// defaults.
func TestLoad_Precedence(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app":        map[string]any{"log_level": "warn", "max_attempts": 4},
		"storage":    map[string]any{"vault_dir": "/from-json", "key_backend": "keyring"},
		"biometrics": map[string]any{"voice_duration": "3s", "sample_rate": 16000},
	})

	t.Setenv("REDBOX_CONFIG", jsonPath)
	t.Setenv("REDBOX_STORAGE_VAULT_DIR", "/from-env")
	t.Setenv("REDBOX_APP_MAX_ATTEMPTS", "3")

	fs := newParsedFlags(t, "--max-attempts", "7")

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.App.MaxAttempts)
	assert.Equal(t, "/from-env", cfg.Storage.VaultDir)
	assert.Equal(t, "keyring", cfg.Storage.KeyBackend)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Biometrics.VoiceDuration)
	assert.Equal(t, 16000, cfg.Biometrics.SampleRate)
	assert.Equal(t, 0.80, cfg.Biometrics.VoiceThreshold)
}

func TestLoad_MissingJSONFile(t *testing.T) {
	fs := newParsedFlags(t, "-c", "/definitely/not/here.json")

	cfg, err := Load(fs)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("REDBOX_APP_MAX_ATTEMPTS", "many")

	cfg, err := Load(nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
}
