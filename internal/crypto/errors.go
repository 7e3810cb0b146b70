package crypto

import "errors"

var (
	// ErrKeyStorage is returned when the vault key cannot be read, written
	// or parsed.
	ErrKeyStorage = errors.New("vault key storage failure")

	// ErrDecryption is returned for every blob that fails authentication.
	ErrDecryption = errors.New("decryption failed")

	// ErrKeyNotInitialized is returned by Encrypt and Decrypt before
	// InitializeOrLoad succeeded.
	ErrKeyNotInitialized = errors.New("vault key not initialized")

	// ErrKeyNotFound is returned by [KeyStore.Load] when no key is stored.
	ErrKeyNotFound = errors.New("vault key not found")

	// ErrKeyExists is returned by [KeyStore.Create] when a key is already
	// stored.
	ErrKeyExists = errors.New("vault key already exists")
)
