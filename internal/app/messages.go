// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// red-box services and the command-line client.
//
// All Msg* and Title* constants are human-readable strings carried by
// notices shown to the user. Keeping them in one place ensures consistent
// wording across the vault.
package app

// Notice titles.
const (
	TitleSuccess       = "Success"
	TitleError         = "Error"
	TitleWarning       = "Warning"
	TitleAccessDenied  = "Access Denied"
	TitleAccessGranted = "Access Granted"
	TitleVaultFiles    = "Vault Files"
	TitleDeleted       = "Deleted"
	TitleFaceCapture   = "Face Capture"
	TitleVoiceCapture  = "Voice Authentication"
	TitleEnrollment    = "Enrollment"
	TitleFirstSetup    = "First Time Setup"
)

const (
	// MsgUnauthorizedAccess is shown after the final failed verification of
	// a retrieve or delete, when the target entry has been destroyed.
	MsgUnauthorizedAccess = "Unauthorized access detected! Encrypted file has been permanently deleted."

	// MsgAttemptsRemaining is shown after a failed verification that still
	// leaves attempts. It takes the number of remaining attempts.
	MsgAttemptsRemaining = "Biometric verification failed. You have %d more %s."

	// MsgAccessDenied is shown after the final failed verification of an
	// operation without a target.
	MsgAccessDenied = "Access denied."

	// MsgAccessGranted is shown when the vault session is unlocked.
	MsgAccessGranted = "Welcome to the Vault!"

	// MsgNotEnrolled is shown when a gated operation is attempted before
	// both factors are enrolled.
	MsgNotEnrolled = "Face or voice not enrolled."

	// MsgCaptureCancelled is shown when the user aborted a capture.
	MsgCaptureCancelled = "Capture cancelled. Nothing was changed."

	// MsgFaceMismatch and MsgVoiceMismatch describe the failing factor.
	MsgFaceMismatch  = "Facial recognition failed."
	MsgVoiceMismatch = "Voice recognition failed."

	// MsgLookAtCamera prompts for a face capture.
	MsgLookAtCamera = "Look at the camera. Press Enter to capture, 'q' to cancel."

	// MsgSpeakNow prompts for a voice recording. It takes the duration in
	// seconds.
	MsgSpeakNow = "Recording voice for %d seconds. Speak clearly."

	// MsgNoFaceDetected is shown when a captured frame holds no face.
	MsgNoFaceDetected = "No face detected in the captured image."

	// MsgFaceEnrolled and MsgVoiceEnrolled confirm an enrollment step.
	MsgFaceEnrolled  = "Facial enrollment complete."
	MsgVoiceEnrolled = "Voice enrollment complete."

	// MsgStartEnrollment is shown when an unenrolled vault is opened.
	MsgStartEnrollment = "Face & voice not enrolled. Starting enrollment."

	// MsgFileAdded confirms an add. It takes the original file name.
	MsgFileAdded = "File '%s' encrypted, stored, and original deleted."

	// MsgFileRetrieved confirms a retrieve. It takes the restored path.
	MsgFileRetrieved = "File '%s' decrypted and saved."

	// MsgFileDeleted confirms a delete.
	MsgFileDeleted = "File deleted successfully."

	// MsgDestroyedEntry names the entry removed by a destructive denial.
	MsgDestroyedEntry = "Deleted: %s"

	// MsgDestroyFailed is appended when a destructive denial could not
	// remove its target.
	MsgDestroyFailed = "Failed to delete file: %v"

	// MsgVaultEmpty is shown by list on an empty vault.
	MsgVaultEmpty = "The vault is empty."

	// MsgVaultLocked is shown when an operation needs an unlocked session.
	MsgVaultLocked = "The vault is locked. Open it first."
)
