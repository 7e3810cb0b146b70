// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "path/filepath"

// File names inside the vault directory.
const (
	KeyFileName          = "secret.key"
	FaceTemplateFileName = "face_encoding.dat"
	VoiceSampleFileName  = "voice_enrollment.wav"
	EntriesDirName       = "encrypted_files"
	AuditDBFileName      = "audit.db"
	LogFileName          = "redbox.log"
)

// VaultPaths is the on-disk layout of one vault. It is derived once from
// the configuration and handed to every component that touches the
// filesystem.
type VaultPaths struct {
	Root         string
	KeyFile      string
	FaceTemplate string
	VoiceSample  string
	EntriesDir   string
	AuditDSN     string
	LogFile      string
}

// NewVaultPaths returns the default layout rooted at root.
func NewVaultPaths(root string) VaultPaths {
	return VaultPaths{
		Root:         root,
		KeyFile:      filepath.Join(root, KeyFileName),
		FaceTemplate: filepath.Join(root, FaceTemplateFileName),
		VoiceSample:  filepath.Join(root, VoiceSampleFileName),
		EntriesDir:   filepath.Join(root, EntriesDirName),
		AuditDSN:     filepath.Join(root, AuditDBFileName),
		LogFile:      filepath.Join(root, LogFileName),
	}
}

// Paths derives the vault layout, honouring the DSN and log file overrides.
func (cfg *StructuredConfig) Paths() VaultPaths {
	p := NewVaultPaths(cfg.Storage.VaultDir)
	if cfg.Storage.DB.DSN != "" {
		p.AuditDSN = cfg.Storage.DB.DSN
	}
	if cfg.App.LogFile != "" {
		p.LogFile = cfg.App.LogFile
	}
	return p
}
