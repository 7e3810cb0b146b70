// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidAppConfigs, cfg.App.MaxAttempts)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Storage.VaultDir == "" {
		return fmt.Errorf("%w: vault directory is empty", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.KeyBackend {
	case KeyBackendFile, KeyBackendKeyring:
	default:
		return fmt.Errorf("%w: unknown key backend %q", ErrInvalidStorageConfigs, cfg.Storage.KeyBackend)
	}

	b := cfg.Biometrics
	if b.VoiceThreshold <= -1 || b.VoiceThreshold > 1 {
		return fmt.Errorf("%w: voice threshold %v outside (-1, 1]", ErrInvalidBiometricsConfigs, b.VoiceThreshold)
	}
	if b.FaceTolerance <= 0 {
		return fmt.Errorf("%w: face tolerance must be positive", ErrInvalidBiometricsConfigs)
	}
	if b.VoiceDuration <= 0 || b.SampleRate <= 0 {
		return fmt.Errorf("%w: voice duration and sample rate must be positive", ErrInvalidBiometricsConfigs)
	}
	if b.CaptureRetries < 1 {
		return fmt.Errorf("%w: capture retries must be at least 1", ErrInvalidBiometricsConfigs)
	}

	return nil
}
