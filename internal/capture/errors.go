package capture

import "errors"

var (
	// ErrNoCommand is returned when a collaborator has no command
	// configured.
	ErrNoCommand = errors.New("no command configured")

	// ErrCommandFailed is returned when an external command exits with an
	// error.
	ErrCommandFailed = errors.New("command failed")

	// ErrInvalidOutput is returned when a command produced no usable
	// output.
	ErrInvalidOutput = errors.New("invalid command output")
)
