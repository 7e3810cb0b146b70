// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditOutcome is the final result recorded for a gate call.
type AuditOutcome string

const (
	OutcomeGranted   AuditOutcome = "granted"
	OutcomeDenied    AuditOutcome = "denied"
	OutcomeDestroyed AuditOutcome = "destroyed"
)

// AuditEvent is the persisted trace of one access gate call or of a
// destructive denial. It deliberately carries no biometric material.
type AuditEvent struct {
	ID        string
	SessionID string
	Operation Operation
	// Target is the vault entry the operation referred to; empty for
	// session-level operations.
	Target     string
	Attempt    int
	Outcome    AuditOutcome
	Reason     DenialReason
	OccurredAt time.Time
}
