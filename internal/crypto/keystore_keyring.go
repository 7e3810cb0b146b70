// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name under which vault keys are stored in
// the OS keyring.
const KeyringService = "red-box"

// KeyringKeyStore keeps the vault key in the OS keyring (Keychain on macOS,
// Secret Service on Linux, Credential Manager on Windows). Each vault is a
// separate account, usually the absolute vault directory.
type KeyringKeyStore struct {
	account string
}

// NewKeyringKeyStore returns a [KeyStore] for the given keyring account.
func NewKeyringKeyStore(account string) *KeyringKeyStore {
	return &KeyringKeyStore{account: account}
}

// Load implements [KeyStore].
func (s *KeyringKeyStore) Load() ([]byte, error) {
	val, err := keyring.Get(KeyringService, s.account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring %s/%s: %w", KeyringService, s.account, err)
	}

	key, err := base64.URLEncoding.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("decode keyring value: %w", err)
	}

	return key, nil
}

// Create implements [KeyStore].
func (s *KeyringKeyStore) Create(key []byte) error {
	_, err := keyring.Get(KeyringService, s.account)
	switch {
	case err == nil:
		return ErrKeyExists
	case !errors.Is(err, keyring.ErrNotFound):
		return fmt.Errorf("read keyring %s/%s: %w", KeyringService, s.account, err)
	}

	if err := keyring.Set(KeyringService, s.account, base64.URLEncoding.EncodeToString(key)); err != nil {
		return fmt.Errorf("write keyring %s/%s: %w", KeyringService, s.account, err)
	}

	return nil
}
