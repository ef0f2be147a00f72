// Package kv stores entries as plain files through a diskv key-value
// store with an in-memory read cache. Keys are YYYY-MM-DD dates and map to
// YYYY/MM/DD.md below the store directory.
package kv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/storage"
)

const fileExt = ".md"

// Store implements storage.Store on top of diskv.
type Store struct {
	d *diskv.Diskv
}

// New creates a diskv-backed store under dataDir/kv.
func New(dataDir string) (*Store, error) {
	basePath := filepath.Join(dataDir, "kv")
	tempDir := filepath.Join(dataDir, "kv-tmp")
	for _, dir := range []string{basePath, tempDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: creating store directory: %v", storage.ErrStorage, err)
		}
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           tempDir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

// Close is a no-op for the diskv backend.
func (s *Store) Close() error {
	return nil
}

// Load reads the entry for date, from the cache when possible.
func (s *Store) Load(date day.Date) (string, error) {
	if err := storage.ValidateDate(date); err != nil {
		return "", err
	}
	val, err := s.d.Read(date.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("%w: reading entry: %v", storage.ErrStorage, err)
	}
	return string(val), nil
}

// Save writes the entry for date.
func (s *Store) Save(date day.Date, content string) error {
	if err := storage.Validate(date, content); err != nil {
		return err
	}
	if err := s.d.WriteString(date.String(), content); err != nil {
		return fmt.Errorf("%w: writing entry: %v", storage.ErrStorage, err)
	}
	return nil
}

// Delete erases the entry for date. diskv prunes emptied directories.
func (s *Store) Delete(date day.Date) error {
	if err := storage.ValidateDate(date); err != nil {
		return err
	}
	if err := s.d.Erase(date.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("%w: erasing entry: %v", storage.ErrStorage, err)
	}
	return nil
}

// Scan lists every stored date. Keys that are not dates are skipped.
func (s *Store) Scan() ([]day.Date, error) {
	var dates []day.Date
	for key := range s.d.Keys(nil) {
		date, err := day.Parse(key)
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}
	slices.SortFunc(dates, day.Date.Compare)
	return dates, nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 {
		return &diskv.PathKey{FileName: key + fileExt}
	}
	return &diskv.PathKey{
		Path:     parts[:2],
		FileName: parts[2] + fileExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	parts := append(slices.Clone(pathKey.Path), strings.TrimSuffix(pathKey.FileName, fileExt))
	return strings.Join(parts, "-")
}
