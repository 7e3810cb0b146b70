// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Operation identifies the vault action on whose behalf the access gate is
// consulted.
type Operation string

const (
	OperationOpen     Operation = "open"
	OperationRetrieve Operation = "retrieve"
	OperationDelete   Operation = "delete"
	OperationEnroll   Operation = "enroll"
)

// GateState is a state of the access gate state machine:
//
//	Idle → CapturingFace → VerifyingFace → CapturingVoice → VerifyingVoice → {Granted | Denied}
type GateState int

const (
	GateIdle GateState = iota
	GateCapturingFace
	GateVerifyingFace
	GateCapturingVoice
	GateVerifyingVoice
	GateGranted
	GateDenied
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "idle"
	case GateCapturingFace:
		return "capturing_face"
	case GateVerifyingFace:
		return "verifying_face"
	case GateCapturingVoice:
		return "capturing_voice"
	case GateVerifyingVoice:
		return "verifying_voice"
	case GateGranted:
		return "granted"
	case GateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a verification attempt.
func (s GateState) Terminal() bool {
	return s == GateGranted || s == GateDenied
}

// DenialReason explains why the access gate ended in [GateDenied].
type DenialReason string

const (
	ReasonNone             DenialReason = ""
	ReasonNotEnrolled      DenialReason = "not_enrolled"
	ReasonCaptureCancelled DenialReason = "capture_cancelled"
	ReasonFaceMismatch     DenialReason = "face_mismatch"
	ReasonVoiceMismatch    DenialReason = "voice_mismatch"
)

// CountsAsFailure reports whether a denial with this reason consumes one of
// the bounded retry attempts. Cancellation and missing enrollment do not.
func (r DenialReason) CountsAsFailure() bool {
	return r == ReasonFaceMismatch || r == ReasonVoiceMismatch
}

// AccessAttempt is the ephemeral record of one access gate call. It lives
// only for the duration of a single verification and is never persisted;
// see [AuditEvent] for the sample-free record kept in the audit log.
type AccessAttempt struct {
	Operation Operation

	// Face and Voice are the live samples captured during this attempt.
	// Either may be nil when the gate short-circuited before capturing it.
	Face  *ImageSample
	Voice *AudioSample

	FaceMatched     bool
	VoiceSimilarity float64
	VoiceMatched    bool

	// Trail lists every state the gate passed through, starting at GateIdle.
	Trail []GateState

	State  GateState
	Reason DenialReason

	StartedAt  time.Time
	FinishedAt time.Time
}

// Granted reports whether both factors passed.
func (a AccessAttempt) Granted() bool {
	return a.State == GateGranted
}
