package ports

import "github.com/zancas/containment/internal/core/domain"

// ConfigLoader reads the layered scope configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the base fragment, the base image settings and the package
	// files of all three scopes.
	Load(s *domain.Settings) (*domain.Assembly, error)

	// LoadImage reads only the community base image settings.
	LoadImage(s *domain.Settings) (domain.BaseImage, error)
}
