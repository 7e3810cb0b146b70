// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/crypto"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/store"
)

// Options are the tunables of the service layer.
type Options struct {
	Gate           GateOptions
	VoiceThreshold float64
	MaxAttempts    int
}

// Services groups the vault services of one session.
type Services struct {
	Gate     Authorizer
	Vault    VaultManager
	Enroller Enroller
}

// NewServices wires the gate, the vault manager and the enroller over the
// given storages and sensors.
func NewServices(
	storages *store.Storages,
	cipher crypto.CipherManager,
	sensors biometric.Sensors,
	notifier Notifier,
	opts Options,
	log *logger.Logger,
) *Services {
	gate := NewAccessGate(storages.Enrollment, sensors, biometric.NewComparator(opts.VoiceThreshold), opts.Gate, notifier, log)

	return &Services{
		Gate:     gate,
		Vault:    NewVaultManager(gate, cipher, storages.Entries, storages.Audit, notifier, opts.MaxAttempts, log),
		Enroller: NewEnroller(storages.Enrollment, sensors, opts.Gate, notifier, log),
	}
}
