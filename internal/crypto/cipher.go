// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/red-box/internal/logger"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of the vault key and of the derived AEAD key.
	KeySize = 32

	blobVersion byte = 1
	nonceSize        = 12
	tagSize          = 16

	entriesInfo = "red-box/entries/v1"
)

// cipherManager is the private implementation of [CipherManager].
type cipherManager struct {
	keys   KeyStore
	logger *logger.Logger

	mu   sync.RWMutex
	aead cipher.AEAD
}

// NewCipherManager returns a [CipherManager] backed by keys. The key is not
// touched until InitializeOrLoad is called.
func NewCipherManager(keys KeyStore, log *logger.Logger) CipherManager {
	return &cipherManager{
		keys:   keys,
		logger: log,
	}
}

// InitializeOrLoad implements [CipherManager].
func (c *cipherManager) InitializeOrLoad() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aead != nil {
		return nil
	}

	key, err := c.keys.Load()
	switch {
	case errors.Is(err, ErrKeyNotFound):
		key, err = c.generate()
		if err != nil {
			return err
		}
	case err != nil:
		c.logger.Err(err).Str("func", "cipherManager.InitializeOrLoad").Msg("error loading vault key")
		return fmt.Errorf("%w: %w", ErrKeyStorage, err)
	}

	if len(key) != KeySize {
		c.logger.Error().Str("func", "cipherManager.InitializeOrLoad").Int("len", len(key)).Msg("vault key has wrong length")
		return fmt.Errorf("%w: key is %d bytes, want %d", ErrKeyStorage, len(key), KeySize)
	}

	aead, err := newAEAD(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyStorage, err)
	}
	c.aead = aead

	return nil
}

// generate creates and persists a new key. When another process created a
// key in the meantime, that key wins and is loaded instead.
func (c *cipherManager) generate() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: generate key: %w", ErrKeyStorage, err)
	}

	err := c.keys.Create(key)
	if errors.Is(err, ErrKeyExists) {
		key, err = c.keys.Load()
	}
	if err != nil {
		c.logger.Err(err).Str("func", "cipherManager.generate").Msg("error persisting vault key")
		return nil, fmt.Errorf("%w: %w", ErrKeyStorage, err)
	}

	c.logger.Info().Str("func", "cipherManager.generate").Msg("generated new vault key")
	return key, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	derived := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(entriesInfo)), derived); err != nil {
		return nil, fmt.Errorf("derive entry key: %w", err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("create AES block cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

func (c *cipherManager) current() (cipher.AEAD, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.aead == nil {
		return nil, ErrKeyNotInitialized
	}
	return c.aead, nil
}

// Encrypt implements [CipherManager].
func (c *cipherManager) Encrypt(plaintext []byte) ([]byte, error) {
	aead, err := c.current()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+tagSize)
	out[0] = blobVersion
	nonce := out[1 : 1+nonceSize]
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aead.Seal(out, nonce, plaintext, out[:1]), nil
}

// Decrypt implements [CipherManager].
func (c *cipherManager) Decrypt(ciphertext []byte) ([]byte, error) {
	aead, err := c.current()
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < 1+nonceSize+tagSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryption)
	}
	if ciphertext[0] != blobVersion {
		return nil, fmt.Errorf("%w: unknown blob version %d", ErrDecryption, ciphertext[0])
	}

	nonce := ciphertext[1 : 1+nonceSize]
	plaintext, err := aead.Open(nil, nonce, ciphertext[1+nonceSize:], ciphertext[:1])
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}
