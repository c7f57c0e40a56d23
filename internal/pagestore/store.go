package pagestore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store reads and writes page files under a single data directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory (and the img/
// subdirectory for previews) recursively if absent. Directory creation is
// best-effort: a failure is logged and the store is still returned, so the
// process can keep serving whatever already exists on disk.
func New(dir string, log *slog.Logger) *Store {
	if err := mkdirs(dir); err != nil {
		log.Warn("failed to prepare data directory", "dir", dir, "error", err)
	}
	return &Store{dir: dir}
}

// NewStrict is like New but fails instead of logging when the data directory
// cannot be created. Used in tests and strict deployments where serving
// without a writable data directory is not acceptable.
func NewStrict(dir string) (*Store, error) {
	if err := mkdirs(dir); err != nil {
		return nil, fmt.Errorf("prepare data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func mkdirs(dir string) error {
	return os.MkdirAll(filepath.Join(dir, "img"), 0o755)
}

// Save writes content for the given identifier, overwriting any previous file.
func (s *Store) Save(id string, content []byte) error {
	if err := os.WriteFile(s.PagePath(id), content, 0o644); err != nil {
		return fmt.Errorf("write page %s: %w", id, err)
	}
	return nil
}

// Load returns the exact bytes previously stored for id,
// or ErrNotFound if no file exists.
func (s *Store) Load(id string) ([]byte, error) {
	data, err := os.ReadFile(s.PagePath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read page %s: %w", id, err)
	}
	return data, nil
}

// PagePath returns the on-disk location of the page file for id.
func (s *Store) PagePath(id string) string {
	return filepath.Join(s.dir, "page-"+id+".html")
}

// PreviewPath returns the on-disk location of the decorative preview image
// for id.
func (s *Store) PreviewPath(id string) string {
	return filepath.Join(s.dir, "img", "page-"+id+".png")
}
