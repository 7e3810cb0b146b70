// Package crypto owns the vault key and the authenticated encryption of
// vault entries.
//
// The 32-byte vault key is created once by [CipherManager.InitializeOrLoad]
// and persisted through a [KeyStore]. Entries are sealed with AES-256-GCM
// under a key derived from the vault key with HKDF-SHA256. A sealed blob is
// self-describing:
//
//	version(1) || nonce(12) || ciphertext+tag
//
// The version byte is bound as associated data.
package crypto
