package service

import (
	"errors"

	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/models"
)

var (
	// ErrNotEnrolled is returned for gated operations on a vault without
	// both factors enrolled.
	ErrNotEnrolled = errors.New("face or voice not enrolled")

	// ErrCaptureCancelled is returned when the user aborted a capture. The
	// operation is abandoned and nothing is destroyed.
	ErrCaptureCancelled = biometric.ErrCaptureCancelled

	// ErrNoFaceDetected is returned by face enrollment when the frame holds
	// no face.
	ErrNoFaceDetected = biometric.ErrNoFaceDetected

	// ErrFaceMismatch and ErrVoiceMismatch name the factor that failed.
	ErrFaceMismatch  = errors.New("facial recognition failed")
	ErrVoiceMismatch = errors.New("voice recognition failed")

	// ErrUnauthorizedAccess is returned after the final failed attempt of
	// an operation with a target. It never wraps the factor that failed.
	ErrUnauthorizedAccess = errors.New("unauthorized access")

	// ErrAccessDenied is returned after a failed verification that destroys
	// nothing.
	ErrAccessDenied = errors.New("access denied")

	// ErrVaultLocked is returned for operations that need an unlocked
	// session.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrDestinationExists is returned by retrieve when the restored file
	// would overwrite an existing one.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrNotRegularFile is returned by add for directories and special
	// files.
	ErrNotRegularFile = errors.New("not a regular file")
)

// reasonError maps a denial reason to its sentinel.
func reasonError(r models.DenialReason) error {
	switch r {
	case models.ReasonNotEnrolled:
		return ErrNotEnrolled
	case models.ReasonCaptureCancelled:
		return ErrCaptureCancelled
	case models.ReasonFaceMismatch:
		return ErrFaceMismatch
	case models.ReasonVoiceMismatch:
		return ErrVoiceMismatch
	default:
		return ErrAccessDenied
	}
}
