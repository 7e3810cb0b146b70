// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the vault.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: logging and the retry policy.
	App App `envPrefix:"APP_"`

	// Storage holds the vault location and key backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Biometrics holds verification thresholds and the external capture /
	// extraction commands.
	Biometrics Biometrics `envPrefix:"BIOMETRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: REDBOX_CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: REDBOX_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where JSON logs are appended. Empty means
	// "<vault dir>/redbox.log".
	// Env: REDBOX_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// MaxAttempts is the number of consecutive biometric verifications
	// allowed for a retrieve or delete before the target entry is destroyed.
	// Env: REDBOX_APP_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Storage holds on-disk settings.
type Storage struct {
	// VaultDir is the root directory of the vault.
	// Env: REDBOX_STORAGE_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`

	// KeyBackend selects where the vault key lives: "file" or "keyring".
	// Env: REDBOX_STORAGE_KEY_BACKEND
	KeyBackend string `env:"KEY_BACKEND"`

	// DB holds the audit database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds audit database settings.
type DB struct {
	// DSN is the SQLite data source name. Empty means
	// "<vault dir>/audit.db".
	// Env: REDBOX_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Biometrics holds verification parameters and capture adapter commands.
//
// Command fields are whitespace-separated argument lists with placeholders:
// {out} (file the command must write), {in} (file to read), {seconds} and
// {rate} (voice recording parameters).
type Biometrics struct {
	// VoiceThreshold is the minimum cosine similarity accepted for the voice
	// factor. Env: REDBOX_BIOMETRICS_VOICE_THRESHOLD
	VoiceThreshold float64 `env:"VOICE_THRESHOLD"`

	// FaceTolerance is the maximum euclidean distance between face
	// embeddings still considered a match.
	// Env: REDBOX_BIOMETRICS_FACE_TOLERANCE
	FaceTolerance float64 `env:"FACE_TOLERANCE"`

	// VoiceDuration is the length of every voice recording.
	// Env: REDBOX_BIOMETRICS_VOICE_DURATION
	VoiceDuration time.Duration `env:"VOICE_DURATION"`

	// SampleRate is the voice recording sample rate in Hz.
	// Env: REDBOX_BIOMETRICS_SAMPLE_RATE
	SampleRate int `env:"SAMPLE_RATE"`

	// CaptureRetries bounds how often a failing capture command is re-run
	// before the failure is surfaced.
	// Env: REDBOX_BIOMETRICS_CAPTURE_RETRIES
	CaptureRetries int `env:"CAPTURE_RETRIES"`

	FaceCaptureCmd  string `env:"FACE_CAPTURE_CMD"`
	FaceExtractCmd  string `env:"FACE_EXTRACT_CMD"`
	VoiceRecordCmd  string `env:"VOICE_RECORD_CMD"`
	VoiceExtractCmd string `env:"VOICE_EXTRACT_CMD"`
}

// Load loads, merges, and validates the configuration. fs is the already
// parsed flag set the flags were registered on with [RegisterFlags]; it may
// be nil.
func Load(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
