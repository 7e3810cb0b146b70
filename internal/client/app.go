// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/red-box/internal/capture"
	"github.com/MKhiriev/red-box/internal/config"
	"github.com/MKhiriev/red-box/internal/crypto"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/presenter"
	"github.com/MKhiriev/red-box/internal/service"
	"github.com/MKhiriev/red-box/internal/store"
)

// App is the wired vault of one process.
type App struct {
	cfg      *config.StructuredConfig
	paths    config.VaultPaths
	logger   *logger.Logger
	closeLog func() error

	console  *presenter.Console
	prompter *capture.Prompter
	storages *store.Storages
	services *service.Services

	restoreDir string
}

// Options customise [NewApp]. Zero values select the production
// collaborators.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Runner capture.Runner
	// RestoreDir is where retrieved files are written; defaults to the
	// working directory.
	RestoreDir string
}

// NewApp builds the vault described by cfg:
//  1. Opens the JSON log file inside the vault directory.
//  2. Loads the vault key from the configured backend, generating it on
//     first use.
//  3. Opens the storages and runs migrations.
//  4. Wires the capture adapters and the services.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, opts Options) (*App, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Runner == nil {
		opts.Runner = capture.ExecRunner{}
	}

	paths := cfg.Paths()
	log, closeLog := logger.NewFileLogger("redbox", paths.LogFile)
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("func", "NewApp").Msg("invalid log level, keeping default")
	}

	a := &App{
		cfg:      cfg,
		paths:    paths,
		logger:   log,
		closeLog: closeLog,
		console:  presenter.NewConsole(opts.Out),
		prompter: capture.NewPrompter(opts.In, opts.Out),
	}

	keys, err := newKeyStore(cfg.Storage.KeyBackend, paths)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	cipher := crypto.NewCipherManager(keys, log)
	if err := cipher.InitializeOrLoad(); err != nil {
		log.Err(err).Str("func", "NewApp").Str("backend", cfg.Storage.KeyBackend).Msg("error initialising vault key")
		_ = a.Close()
		return nil, fmt.Errorf("initialise vault key: %w", err)
	}

	sensors := capture.NewSensors(cfg.Biometrics, a.prompter, opts.Runner, log)

	a.storages, err = store.NewStorages(ctx, paths, sensors.VoiceEncoder, log)
	if err != nil {
		log.Err(err).Str("func", "NewApp").Msg("error creating storages")
		_ = a.Close()
		return nil, fmt.Errorf("create storages: %w", err)
	}

	a.services = service.NewServices(a.storages, cipher, sensors, a.console, service.Options{
		Gate: service.GateOptions{
			VoiceDuration: cfg.Biometrics.VoiceDuration,
			SampleRate:    cfg.Biometrics.SampleRate,
		},
		VoiceThreshold: cfg.Biometrics.VoiceThreshold,
		MaxAttempts:    cfg.App.MaxAttempts,
	}, log)

	restoreDir := opts.RestoreDir
	if restoreDir == "" {
		if restoreDir, err = os.Getwd(); err != nil {
			restoreDir = "."
		}
	}
	a.restoreDir = restoreDir

	log.Info().Str("func", "NewApp").Str("vault", paths.Root).Str("backend", cfg.Storage.KeyBackend).Msg("vault ready")
	return a, nil
}

// newKeyStore selects the key backend. The keyring account is the absolute
// vault directory so several vaults can share one keyring.
func newKeyStore(backend string, paths config.VaultPaths) (crypto.KeyStore, error) {
	switch backend {
	case config.KeyBackendFile, "":
		return crypto.NewFileKeyStore(paths.KeyFile), nil
	case config.KeyBackendKeyring:
		account, err := filepath.Abs(paths.Root)
		if err != nil {
			return nil, fmt.Errorf("resolve vault dir: %w", err)
		}
		return crypto.NewKeyringKeyStore(account), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyBackend, backend)
	}
}

// Session returns a new locked session over the vault.
func (a *App) Session() *Session {
	return NewSession(a.services.Vault, a.services.Enroller, a.console, a.prompter, a.restoreDir, a.logger)
}

// Console returns the terminal presenter.
func (a *App) Console() *presenter.Console {
	return a.console
}

// Paths returns the vault layout.
func (a *App) Paths() config.VaultPaths {
	return a.paths
}

// Close releases the audit database and the log file.
func (a *App) Close() error {
	var errs []error
	if a.storages != nil {
		errs = append(errs, a.storages.Close())
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
	}
	return errors.Join(errs...)
}
