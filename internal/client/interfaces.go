// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/red-box/internal/service"
	"github.com/MKhiriev/red-box/models"
)

// Presenter renders notices and listings for the user.
type Presenter interface {
	service.Notifier

	Banner()
	Entries(entries []models.VaultEntry)
	AuditTrail(events []models.AuditEvent)
	Status(st models.EnrollmentStatus)
	Println(a ...any)
}

// LineReader reads one line of user input.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}
