// Package record persists the record of the last successful image build.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildRecordStore with one JSON file per project.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the record in projectDir, or nil when no build has been recorded.
func (s *Store) Get(projectDir string) (*domain.BuildRecord, error) {
	path := filepath.Join(projectDir, domain.BuildRecordName)

	//nolint:gosec // path is derived from resolved settings
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Fail(domain.ErrBuildRecordFailed, err), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var rec domain.BuildRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrBuildRecordFailed, err), "path", path)
	}
	return &rec, nil
}

// Put overwrites the record in projectDir.
func (s *Store) Put(projectDir string, rec domain.BuildRecord) error {
	path := filepath.Join(projectDir, domain.BuildRecordName)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.With(domain.Fail(domain.ErrBuildRecordFailed, err), "path", path)
	}

	//nolint:gosec // path is derived from resolved settings
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrBuildRecordFailed, err), "path", path)
	}
	return nil
}

// Fingerprint returns the xxhash64 of dockerfile as 16 hex digits, or "" for
// an empty input.
func (s *Store) Fingerprint(dockerfile []byte) string {
	if len(dockerfile) == 0 {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(dockerfile))
}
