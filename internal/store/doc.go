// Package store persists everything the vault keeps on disk: the enrolled
// biometric templates, the encrypted entries and the audit trail.
//
// Files are always written atomically (temporary file + rename) with mode
// 0600 inside directories created with mode 0700.
package store
