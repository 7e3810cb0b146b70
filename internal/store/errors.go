package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrFileIO wraps every filesystem failure of the vault directory.
	ErrFileIO = errors.New("vault file i/o failure")

	// ErrMalformedTemplate is returned when a stored biometric template
	// cannot be decoded or fails its checksum.
	ErrMalformedTemplate = errors.New("malformed biometric template")

	// ErrEntryNotFound is returned when an entry does not exist.
	ErrEntryNotFound = errors.New("vault entry not found")

	// ErrEntryExists is returned when a new entry would overwrite an
	// existing one.
	ErrEntryExists = errors.New("vault entry already exists")

	// ErrInvalidEntryName is returned for names that are empty, contain a
	// path separator or do not carry the ".enc" suffix.
	ErrInvalidEntryName = errors.New("invalid vault entry name")
)

// Audit database errors.
var (
	// ErrAuditNotSaved is returned when an insert affected no rows.
	ErrAuditNotSaved = errors.New("audit event was not saved")

	// ErrNilDB is returned when a repository is used without a connection.
	ErrNilDB = errors.New("db is nil")
)
