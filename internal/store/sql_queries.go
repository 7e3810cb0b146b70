// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	insertAuditEvent = `
		INSERT INTO audit_events (
			id,
			session_id,
			operation,
			target,
			attempt,
			outcome,
			reason,
			occurred_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	listAuditEvents = `
		SELECT
			id,
			session_id,
			operation,
			target,
			attempt,
			outcome,
			reason,
			occurred_at
		FROM audit_events
		ORDER BY occurred_at DESC, rowid DESC
		LIMIT ?;`
)
