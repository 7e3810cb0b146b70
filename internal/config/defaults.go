// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultVaultDir       = "red_box_vault"
	DefaultKeyBackend     = KeyBackendFile
	DefaultLogLevel       = "info"
	DefaultMaxAttempts    = 2
	DefaultVoiceThreshold = 0.80
	DefaultFaceTolerance  = 0.6
	DefaultVoiceDuration  = 5 * time.Second
	DefaultSampleRate     = 44100
	DefaultCaptureRetries = 3

	DefaultFaceCaptureCmd = "fswebcam --no-banner -r 640x480 {out}"
	DefaultVoiceRecordCmd = "arecord -q -f S16_LE -c 1 -r {rate} -d {seconds} {out}"
)

// Key backends accepted by Storage.KeyBackend.
const (
	KeyBackendFile    = "file"
	KeyBackendKeyring = "keyring"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:    DefaultLogLevel,
			MaxAttempts: DefaultMaxAttempts,
		},
		Storage: Storage{
			VaultDir:   DefaultVaultDir,
			KeyBackend: DefaultKeyBackend,
		},
		Biometrics: Biometrics{
			VoiceThreshold: DefaultVoiceThreshold,
			FaceTolerance:  DefaultFaceTolerance,
			VoiceDuration:  DefaultVoiceDuration,
			SampleRate:     DefaultSampleRate,
			CaptureRetries: DefaultCaptureRetries,
			FaceCaptureCmd: DefaultFaceCaptureCmd,
			VoiceRecordCmd: DefaultVoiceRecordCmd,
		},
	}
}
