// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/models"
)

// DefaultAuditListLimit is used by List when limit is not positive.
const DefaultAuditListLimit = 50

type auditRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditRepository returns an [AuditRepository] on db.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	return &auditRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *auditRepository) Record(ctx context.Context, event models.AuditEvent) error {
	log := a.logger.Ctx(ctx)

	if a.DB == nil || a.DB.DB == nil {
		return ErrNilDB
	}

	res, err := a.DB.ExecContext(ctx, insertAuditEvent,
		event.ID,
		event.SessionID,
		string(event.Operation),
		event.Target,
		event.Attempt,
		string(event.Outcome),
		string(event.Reason),
		event.OccurredAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.Record").
			Str("event_id", event.ID).
			Str("operation", string(event.Operation)).
			Msg("failed to insert audit event")
		return fmt.Errorf("failed to save audit event (id=%s): %w", event.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrAuditNotSaved
	}

	return nil
}

func (a *auditRepository) List(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	log := a.logger.Ctx(ctx)

	if a.DB == nil || a.DB.DB == nil {
		return nil, ErrNilDB
	}
	if limit <= 0 {
		limit = DefaultAuditListLimit
	}

	rows, err := a.DB.QueryContext(ctx, listAuditEvents, limit)
	if err != nil {
		log.Err(err).Str("func", "auditRepository.List").Msg("failed to query audit events")
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0, limit)
	for rows.Next() {
		var (
			ev                        models.AuditEvent
			operation, outcome, reason string
		)
		if err := rows.Scan(
			&ev.ID,
			&ev.SessionID,
			&operation,
			&ev.Target,
			&ev.Attempt,
			&outcome,
			&reason,
			&ev.OccurredAt,
		); err != nil {
			log.Err(err).Str("func", "auditRepository.List").Msg("failed to scan audit event row")
			return nil, fmt.Errorf("failed to scan audit event row: %w", err)
		}
		ev.Operation = models.Operation(operation)
		ev.Outcome = models.AuditOutcome(outcome)
		ev.Reason = models.DenialReason(reason)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit events: %w", err)
	}

	return events, nil
}
