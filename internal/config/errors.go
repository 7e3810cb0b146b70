package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive attempt limit or unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty vault directory or unknown key backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBiometricsConfigs indicates invalid verification parameters
	// (for example, a voice threshold outside (-1, 1]).
	ErrInvalidBiometricsConfigs = errors.New("invalid biometrics configuration")
)
