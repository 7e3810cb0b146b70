// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultEntry describes one ciphertext blob kept in the managed directory.
type VaultEntry struct {
	// Name is the stored file name, i.e. the original file name plus the
	// ".enc" suffix.
	Name string
	// OriginalName is Name without the suffix; it is the name the plaintext
	// is restored under.
	OriginalName string
	Size         int64
	ModifiedAt   time.Time
}
