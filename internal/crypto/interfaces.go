package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyStore persists the raw vault key.
type KeyStore interface {
	// Load returns the stored key or [ErrKeyNotFound] when none exists yet.
	Load() ([]byte, error)

	// Create stores key if and only if no key exists yet. It returns
	// [ErrKeyExists] otherwise and never overwrites.
	Create(key []byte) error
}

// CipherManager is the only holder of the vault key in memory.
type CipherManager interface {
	// InitializeOrLoad loads the vault key, generating and persisting a new
	// one on first use. Calling it again is a no-op.
	InitializeOrLoad() error

	// Encrypt seals plaintext into a self-describing blob.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Any tampering, truncation,
	// unknown version or wrong key yields [ErrDecryption] and no data.
	Decrypt(ciphertext []byte) ([]byte, error)
}
