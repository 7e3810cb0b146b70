// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/models"
)

// EntrySuffix is appended to the original file name of every stored entry.
const EntrySuffix = ".enc"

type fileEntryStore struct {
	dir    string
	logger *logger.Logger
}

// NewEntryStore returns an [EntryStore] rooted at dir. The directory is
// created on first write.
func NewEntryStore(dir string, log *logger.Logger) EntryStore {
	return &fileEntryStore{
		dir:    dir,
		logger: log,
	}
}

// EntryName returns the stored name for an original file name.
func EntryName(original string) string {
	return original + EntrySuffix
}

// OriginalName strips the entry suffix.
func OriginalName(entry string) string {
	return strings.TrimSuffix(entry, EntrySuffix)
}

// ValidateEntryName rejects names that could escape the entry directory or
// are not entry names.
func ValidateEntryName(name string) error {
	switch {
	case name == "",
		name != filepath.Base(name),
		strings.ContainsAny(name, `/\`),
		strings.ContainsRune(name, 0),
		strings.HasPrefix(name, tempPrefix),
		!strings.HasSuffix(name, EntrySuffix),
		len(name) == len(EntrySuffix):
		return fmt.Errorf("%w: %q", ErrInvalidEntryName, name)
	}
	if orig := OriginalName(name); orig == "." || orig == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidEntryName, name)
	}
	return nil
}

func (s *fileEntryStore) path(name string) (string, error) {
	if err := ValidateEntryName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

func (s *fileEntryStore) Put(ctx context.Context, name string, blob []byte) error {
	log := s.logger.Ctx(ctx)

	p, err := s.path(name)
	if err != nil {
		return err
	}

	exists, err := fileExists(p)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrEntryExists, name)
	}

	if err := writeFileAtomic(p, blob); err != nil {
		log.Err(err).Str("func", "fileEntryStore.Put").Str("entry", name).Msg("error writing entry")
		return err
	}

	log.Debug().Str("func", "fileEntryStore.Put").Str("entry", name).Int("size", len(blob)).Msg("entry stored")
	return nil
}

func (s *fileEntryStore) Get(ctx context.Context, name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, ok, err := readFileIfExists(p)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "fileEntryStore.Get").Str("entry", name).Msg("error reading entry")
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	return data, nil
}

func (s *fileEntryStore) Remove(ctx context.Context, name string) error {
	log := s.logger.Ctx(ctx)

	p, err := s.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	if err != nil {
		log.Err(err).Str("func", "fileEntryStore.Remove").Str("entry", name).Msg("error removing entry")
		return fmt.Errorf("%w: remove %s: %w", ErrFileIO, name, err)
	}

	log.Debug().Str("func", "fileEntryStore.Remove").Str("entry", name).Msg("entry removed")
	return nil
}

func (s *fileEntryStore) Exists(_ context.Context, name string) (bool, error) {
	p, err := s.path(name)
	if err != nil {
		return false, err
	}
	return fileExists(p)
}

func (s *fileEntryStore) List(ctx context.Context) ([]models.VaultEntry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.VaultEntry{}, nil
	}
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "fileEntryStore.List").Msg("error reading entry directory")
		return nil, fmt.Errorf("%w: read %s: %w", ErrFileIO, s.dir, err)
	}

	entries := make([]models.VaultEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() || ValidateEntryName(de.Name()) != nil {
			continue
		}

		info, err := de.Info()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: stat %s: %w", ErrFileIO, de.Name(), err)
		}

		entries = append(entries, models.VaultEntry{
			Name:         de.Name(),
			OriginalName: OriginalName(de.Name()),
			Size:         info.Size(),
			ModifiedAt:   info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
