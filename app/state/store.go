package state

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned by Load when no state has been saved yet.
	ErrNotFound = errors.New("no saved state")
	// ErrUnsupportedVersion is returned for state files written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported state file version")
)

// Store loads and saves the Record. Implementations own their backing
// storage exclusively.
type Store interface {
	Path() string
	Exists() (bool, error)
	Load() (*Record, error)
	Save(rec *Record) error
	// Remove deletes the saved state, reporting whether anything existed.
	Remove() (bool, error)
}

// FileStore keeps the record in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the state file location.
func (s *FileStore) Path() string { return s.path }

// Exists reports whether the state file is present.
func (s *FileStore) Exists() (bool, error) {
	info, err := os.Stat(s.path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("state path %s is a directory", s.path)
		}
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("could not stat state file %s: %w", s.path, err)
}

// Load reads and decodes the state file.
func (s *FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	rec, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", s.path, err)
	}
	return rec, nil
}

// Save encodes rec and replaces the state file. The new content is written
// to a temp file in the same directory first, so a failed write leaves the
// previous state intact.
func (s *FileStore) Save(rec *Record) error {
	data, err := encode(rec)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	// 0o600: the record is personal to the user.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", s.path, err)
	}
	return nil
}

// Remove deletes the state file.
func (s *FileStore) Remove() (bool, error) {
	exists, err := s.Exists()
	if err != nil || !exists {
		return false, err
	}
	if err := os.Remove(s.path); err != nil {
		return false, fmt.Errorf("failed to remove state file %s: %w", s.path, err)
	}
	return true, nil
}

func encode(rec *Record) ([]byte, error) {
	out := *rec
	out.Version = SchemaVersion
	if out.Languages == nil {
		out.Languages = []string{}
	}
	if out.Bag == nil {
		out.Bag = []string{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*Record, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.Version > SchemaVersion {
		return nil, fmt.Errorf("%w: %d (this build understands up to %d)", ErrUnsupportedVersion, rec.Version, SchemaVersion)
	}
	rec.Version = SchemaVersion
	rec.normalize()
	return &rec, nil
}

// MemoryStore keeps the record in memory. Saved records are copied so callers
// cannot mutate the stored value behind the store's back.
type MemoryStore struct {
	rec   *Record
	Saves int
}

// NewMemoryStore returns a store preloaded with rec, or an empty store if rec is nil.
func NewMemoryStore(rec *Record) *MemoryStore {
	s := &MemoryStore{}
	if rec != nil {
		s.rec = clone(rec)
	}
	return s
}

// Path describes the store in messages.
func (s *MemoryStore) Path() string { return "memory" }

// Exists reports whether a record has been saved.
func (s *MemoryStore) Exists() (bool, error) { return s.rec != nil, nil }

// Load returns a copy of the stored record.
func (s *MemoryStore) Load() (*Record, error) {
	if s.rec == nil {
		return nil, ErrNotFound
	}
	return clone(s.rec), nil
}

// Save stores a copy of rec.
func (s *MemoryStore) Save(rec *Record) error {
	s.rec = clone(rec)
	s.Saves++
	return nil
}

// Remove clears the stored record.
func (s *MemoryStore) Remove() (bool, error) {
	existed := s.rec != nil
	s.rec = nil
	return existed, nil
}

func clone(rec *Record) *Record {
	out := *rec
	out.Languages = slices.Clone(rec.Languages)
	out.Bag = slices.Clone(rec.Bag)
	return &out
}
