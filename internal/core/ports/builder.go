package ports

import (
	"context"
	"io"

	"github.com/zancas/containment/internal/core/domain"
)

// ImageBuilder talks to the container engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ImageBuilder interface {
	// Build builds the project directory into the project image tag,
	// rendering build progress to out as it arrives.
	Build(ctx context.Context, s *domain.Settings, img domain.BaseImage, out io.Writer) error

	// ImageExists reports whether the engine has an image with the given tag.
	ImageExists(ctx context.Context, tag string) (bool, error)
}
