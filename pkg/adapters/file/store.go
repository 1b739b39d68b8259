package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tabula-historica/snapshot/pkg/domain"
)

// DefaultPerm is the mode given to written snapshots. They are meant to be served publicly.
const DefaultPerm fs.FileMode = 0644

// Store implements ports.SnapshotStore on a single file.
// The parent directory is never created; a missing directory is a write failure.
type Store struct {
	Path string
	Perm fs.FileMode
}

// New creates a Store for the given path with DefaultPerm.
func New(path string) *Store {
	return &Store{Path: path, Perm: DefaultPerm}
}

// Describe returns the file path.
func (s *Store) Describe() string {
	return s.Path
}

// Load reads the whole file.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrNotFound, s.Path, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return data, nil
}

// Save replaces the file atomically.
// It writes to a temporary file next to the destination, syncs via fsync, and then renames it.
// On failure the previous contents of the destination are left untouched.
func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)

	// Same directory as the destination, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrWrite, s.Path, err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write temp file: %w", domain.ErrWrite, err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("%w: failed to fsync temp file: %w", domain.ErrWrite, err)
	}

	perm := s.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("%w: failed to chmod temp file: %w", domain.ErrWrite, err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", domain.ErrWrite, err)
	}

	// os.Rename does not replace an existing destination on Windows.
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(s.Path); err == nil {
			if err := os.Remove(s.Path); err != nil {
				return fmt.Errorf("%w: failed to remove existing snapshot: %w", domain.ErrWrite, err)
			}
		}
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("%w: failed to rename temp file: %w", domain.ErrWrite, err)
	}

	return nil
}
