package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("REDBOX_STORAGE_VAULT_DIR", "/env/vault")
	t.Setenv("REDBOX_STORAGE_DB_DSN", "/env/audit.db")
	t.Setenv("REDBOX_APP_LOG_LEVEL", "error")
	t.Setenv("REDBOX_BIOMETRICS_VOICE_DURATION", "2s")
	t.Setenv("REDBOX_BIOMETRICS_VOICE_THRESHOLD", "0.75")
	t.Setenv("REDBOX_BIOMETRICS_FACE_EXTRACT_CMD", "embed {in}")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/env/vault", cfg.Storage.VaultDir)
	assert.Equal(t, "/env/audit.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Biometrics.VoiceDuration)
	assert.Equal(t, 0.75, cfg.Biometrics.VoiceThreshold)
	assert.Equal(t, "embed {in}", cfg.Biometrics.FaceExtractCmd)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("REDBOX_BIOMETRICS_VOICE_DURATION", "forever")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
