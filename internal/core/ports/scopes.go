package ports

import "github.com/zancas/containment/internal/core/domain"

// ScopeStore owns the on-disk scope directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=scopes.go -destination=mocks/mock_scopes.go -package=mocks
type ScopeStore interface {
	// Exists reports whether the scope directory is present.
	Exists(s *domain.Settings, scope domain.Scope) (bool, error)

	// Pave creates the scope directory with its default files.
	// It fails with domain.ErrScopeExists if the directory is already present.
	Pave(s *domain.Settings, scope domain.Scope) error

	// WriteDockerfile overwrites the project Dockerfile.
	WriteDockerfile(s *domain.Settings, text string) error

	// ReadDockerfile returns the project Dockerfile, or nil if there is none.
	ReadDockerfile(s *domain.Settings) ([]byte, error)
}
