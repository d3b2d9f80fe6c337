// store.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage is the disk-backed object store behind the documents
// bucket. Stored names never derive from user input; the original filename
// only contributes its extension.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes and serves document binaries under a single root directory.
type Store struct {
	root string
}

// New creates the root directory if needed and returns a Store over it.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Save streams r into a newly named object and returns its object path and
// byte size. The object name is unix-millis plus a uuid plus the original
// extension, so concurrent uploads never collide.
func (s *Store) Save(r io.Reader, originalName string) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create object %s: %w", name, err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Best effort cleanup of the partial write
		_ = os.Remove(filepath.Join(s.root, name))
		return "", 0, fmt.Errorf("failed to write object %s: %w", name, err)
	}

	return name, size, nil
}

// Path resolves an object path to its absolute filesystem location. Paths
// that escape the root are rejected.
func (s *Store) Path(object string) (string, error) {
	clean := filepath.Clean(object)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object path %q", object)
	}
	return filepath.Join(s.root, clean), nil
}

// Open opens an object for reading.
func (s *Store) Open(object string) (*os.File, error) {
	path, err := s.Path(object)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Remove deletes an object. Removing an object that is already gone is not
// an error; replacement cleanup may race a manual purge.
func (s *Store) Remove(object string) error {
	path, err := s.Path(object)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object %s: %w", object, err)
	}
	return nil
}

// Stat reports whether an object exists and its size.
func (s *Store) Stat(object string) (int64, error) {
	path, err := s.Path(object)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Probe verifies the root is present and writable by creating and removing
// a marker file. Health checks call this.
func (s *Store) Probe() error {
	f, err := os.CreateTemp(s.root, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}

// Usage walks the root and returns total bytes stored and object count,
// feeding the documents page storage card.
func (s *Store) Usage() (int64, int, error) {
	var bytes int64
	var count int
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		bytes += info.Size()
		count++
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return bytes, count, nil
}
