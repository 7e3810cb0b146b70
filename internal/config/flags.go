// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig         = "config"
	FlagVaultDir       = "vault-dir"
	FlagKeyBackend     = "key-backend"
	FlagAuditDSN       = "audit-dsn"
	FlagLogLevel       = "log-level"
	FlagLogFile        = "log-file"
	FlagMaxAttempts    = "max-attempts"
	FlagVoiceThreshold = "voice-threshold"
	FlagFaceTolerance  = "face-tolerance"
)

// RegisterFlags registers all configuration flags on fs. Zero defaults are
// used on purpose: an unset flag must not shadow env, JSON or built-in
// defaults during the merge.
//
// Flags:
//
//	-c/--config        json file path with configs
//	-d/--vault-dir     vault root directory
//	--key-backend      "file" or "keyring"
//	--audit-dsn        audit database DSN
//	--log-level        zerolog level
//	--log-file         log file path
//	--max-attempts     biometric attempts before destructive denial
//	--voice-threshold  minimum voice cosine similarity
//	--face-tolerance   maximum face embedding distance
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.StringP(FlagVaultDir, "d", "", "Vault root directory")
	fs.String(FlagKeyBackend, "", "Vault key backend (file|keyring)")
	fs.String(FlagAuditDSN, "", "Audit database DSN")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path")
	fs.Int(FlagMaxAttempts, 0, "Biometric attempts before the target entry is destroyed")
	fs.Float64(FlagVoiceThreshold, 0, "Minimum voice cosine similarity")
	fs.Float64(FlagFaceTolerance, 0, "Maximum face embedding distance")
}

// parseFlags reads the values of flags registered with [RegisterFlags].
// Flags that were not registered on fs are ignored.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	strs := []struct {
		name string
		dst  *string
	}{
		{FlagConfig, &cfg.JSONFilePath},
		{FlagVaultDir, &cfg.Storage.VaultDir},
		{FlagKeyBackend, &cfg.Storage.KeyBackend},
		{FlagAuditDSN, &cfg.Storage.DB.DSN},
		{FlagLogLevel, &cfg.App.LogLevel},
		{FlagLogFile, &cfg.App.LogFile},
	}
	for _, s := range strs {
		if fs.Lookup(s.name) == nil {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", s.name, err)
		}
		*s.dst = v
	}

	if fs.Lookup(FlagMaxAttempts) != nil {
		v, err := fs.GetInt(FlagMaxAttempts)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagMaxAttempts, err)
		}
		cfg.App.MaxAttempts = v
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{FlagVoiceThreshold, &cfg.Biometrics.VoiceThreshold},
		{FlagFaceTolerance, &cfg.Biometrics.FaceTolerance},
	}
	for _, f := range floats {
		if fs.Lookup(f.name) == nil {
			continue
		}
		v, err := fs.GetFloat64(f.name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", f.name, err)
		}
		*f.dst = v
	}

	return cfg, nil
}
