package client

import "errors"

var (
	// ErrUnknownFactor is returned for an enrollment target other than
	// face, voice or all.
	ErrUnknownFactor = errors.New("unknown biometric factor")

	// ErrUnknownKeyBackend is returned for a key backend other than file or
	// keyring.
	ErrUnknownKeyBackend = errors.New("unknown key backend")
)
