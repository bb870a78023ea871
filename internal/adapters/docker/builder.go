// Package docker builds project images through the Docker Engine API.
package docker

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/zancas/containment/internal/adapters/imageref"
	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// API is the subset of the Engine API client the builder uses.
type API interface {
	ImageBuild(ctx context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error)
	ImageInspect(ctx context.Context, imageID string, inspectOpts ...client.ImageInspectOption) (image.InspectResponse, error)
}

// Builder implements ports.ImageBuilder.
type Builder struct {
	connect func() (API, error)
	now     func() time.Time

	once sync.Once
	api  API
	err  error
}

// NewBuilder creates a Builder that connects to the engine named by the
// DOCKER_* environment on first use.
func NewBuilder() *Builder {
	return NewBuilderWithAPI(func() (API, error) {
		return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	}, time.Now)
}

// NewBuilderWithAPI creates a Builder with a custom connector and clock.
func NewBuilderWithAPI(connect func() (API, error), now func() time.Time) *Builder {
	return &Builder{connect: connect, now: now}
}

func (b *Builder) engine() (API, error) {
	b.once.Do(func() {
		b.api, b.err = b.connect()
		if b.err != nil {
			b.err = domain.Fail(domain.ErrEngineUnavailable, b.err)
		}
	})
	return b.api, b.err
}

// Build sends the project directory as build context and renders the JSON
// progress stream to out until the engine closes it.
func (b *Builder) Build(ctx context.Context, s *domain.Settings, img domain.BaseImage, out io.Writer) error {
	api, err := b.engine()
	if err != nil {
		return err
	}

	ref, err := imageref.Parse(img.Reference)
	if err != nil {
		return err
	}

	buildCtx, err := buildContext(s.ProjectDir())
	if err != nil {
		return err
	}

	tag := s.ImageTag()
	resp, err := api.ImageBuild(ctx, buildCtx, build.ImageBuildOptions{
		Tags:       []string{tag},
		Dockerfile: domain.DockerfileName,
		Remove:     true,
		Labels:     b.labels(s, ref),
	})
	if err != nil {
		return zerr.With(domain.Fail(domain.ErrImageBuildFailed, err), "tag", tag)
	}
	defer func() { _ = resp.Body.Close() }()

	fd, isTerm := terminal(out)
	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, out, fd, isTerm, nil); err != nil {
		return zerr.With(domain.Fail(domain.ErrImageBuildFailed, err), "tag", tag)
	}

	return nil
}

// ImageExists inspects tag and reports whether the engine knows it.
func (b *Builder) ImageExists(ctx context.Context, tag string) (bool, error) {
	api, err := b.engine()
	if err != nil {
		return false, err
	}

	if _, err := api.ImageInspect(ctx, tag); err != nil {
		if client.IsErrNotFound(err) {
			return false, nil
		}
		return false, zerr.With(domain.Fail(domain.ErrEngineUnavailable, err), "tag", tag)
	}
	return true, nil
}

// labels annotates the image with its project and base image.
func (b *Builder) labels(s *domain.Settings, ref imageref.Ref) map[string]string {
	labels := map[string]string{
		ocispec.AnnotationTitle:         domain.TagPrefix + s.ProjectName,
		ocispec.AnnotationCreated:       b.now().UTC().Format(time.RFC3339),
		ocispec.AnnotationBaseImageName: ref.Name,
	}
	if ref.Pinned() {
		labels[ocispec.AnnotationBaseImageDigest] = ref.Digest.String()
	}
	return labels
}

// terminal reports the descriptor of out when it is a terminal, so progress
// bars redraw in place.
func terminal(out io.Writer) (uintptr, bool) {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := f.Fd()
	return fd, term.IsTerminal(int(fd)) //nolint:gosec // descriptors fit in int
}
