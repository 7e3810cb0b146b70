// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/models"
)

// notify shows text verbatim.
func notify(ctx context.Context, n Notifier, level models.NoticeLevel, title, text string) {
	if n == nil {
		return
	}
	n.Notify(ctx, models.Notice{Level: level, Title: title, Text: text})
}

func notifyf(ctx context.Context, n Notifier, level models.NoticeLevel, title, format string, args ...any) {
	notify(ctx, n, level, title, fmt.Sprintf(format, args...))
}

// reasonMessage is the factor-specific explanation of a denial.
func reasonMessage(r models.DenialReason) string {
	switch r {
	case models.ReasonNotEnrolled:
		return app.MsgNotEnrolled
	case models.ReasonCaptureCancelled:
		return app.MsgCaptureCancelled
	case models.ReasonFaceMismatch:
		return app.MsgFaceMismatch
	case models.ReasonVoiceMismatch:
		return app.MsgVoiceMismatch
	default:
		return app.MsgAccessDenied
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
