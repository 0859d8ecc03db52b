package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileLock is an advisory exclusive lock guarding the state file against
// two invocations racing on it.
type FileLock struct {
	path     string
	state    string
	file     *os.File
	released bool
	mu       sync.Mutex
}

// Lock blocks until the advisory lock next to the state file is held.
// The lock file is <path>.lock. Missing parent directories are created.
func (s *FileStore) Lock() (*FileLock, error) {
	path := s.path + ".lock"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}
	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return &FileLock{path: path, state: s.path, file: file}, nil
}

// Release drops the lock and closes the lock file. The lock file is deleted
// when the state file no longer exists, so a reset or a cancelled setup
// leaves nothing behind. It is safe to call twice.
func (l *FileLock) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.released {
		return nil
	}
	l.released = true

	var errs []error
	if _, err := os.Stat(l.state); errors.Is(err, fs.ErrNotExist) {
		if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove lock file: %w", err))
		}
	}
	if err := unlockFile(l.file); err != nil {
		errs = append(errs, err)
	}
	if err := l.file.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
