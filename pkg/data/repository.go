package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrCorruptDocument marks a backing file that exists but does not parse.
var ErrCorruptDocument = errors.New("corrupt tracker document")

// Repository persists a Store as a flat JSON mapping on disk. The document
// is read and written wholesale; there is no partial update.
type Repository struct {
	path   string
	atomic bool
}

// NewRepository creates a repository backed by the file at path. When atomic
// is set, saves go through a temp file and rename so a failed write cannot
// truncate the existing document.
func NewRepository(path string, atomic bool) *Repository {
	return &Repository{path: path, atomic: atomic}
}

func (r *Repository) Path() string {
	return r.path
}

// Load reads the whole backing document. A missing file is a fresh start,
// not an error. A file that fails to parse yields an empty store alongside
// ErrCorruptDocument; the on-disk content stays untouched until the next
// explicit Save.
func (r *Repository) Load() (*Store, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return NewStore(), fmt.Errorf("read %s: %w", r.path, err)
	}

	var records map[string]SeriesRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return NewStore(), fmt.Errorf("%w: %s: %v", ErrCorruptDocument, r.path, err)
	}
	if records == nil {
		records = make(map[string]SeriesRecord)
	}
	return &Store{records: records}, nil
}

// Save overwrites the backing document with the full store.
func (r *Repository) Save(s *Store) error {
	raw, err := json.MarshalIndent(s.records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tracker data: %w", err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	if !r.atomic {
		if err := os.WriteFile(r.path, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", r.path, err)
		}
		return nil
	}

	tmp, err := os.CreateTemp(dir, ".list-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", tmpPath, err)
	}
	return nil
}
