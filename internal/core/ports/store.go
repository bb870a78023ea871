package ports

import "github.com/zancas/containment/internal/core/domain"

// BuildRecordStore persists the record of the last successful build.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get returns the record stored in projectDir.
	// Returns nil, nil if not found.
	Get(projectDir string) (*domain.BuildRecord, error)

	// Put stores the record in projectDir.
	Put(projectDir string, rec domain.BuildRecord) error

	// Fingerprint identifies a Dockerfile by content.
	Fingerprint(dockerfile []byte) string
}
