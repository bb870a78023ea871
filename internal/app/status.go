package app

import (
	"context"
	"fmt"

	"github.com/zancas/containment/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Status reports which scopes are paved, the declared base image, whether
// the Dockerfile changed since the last build and whether the image exists.
// An unreachable container engine is reported as a warning.
func (a *App) Status(ctx context.Context) (*domain.Status, error) {
	s, err := a.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	st := &domain.Status{Tag: s.ImageTag()}
	paved := make(map[domain.Scope]bool, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		ok, err := a.scopes.Exists(s, scope)
		if err != nil {
			return nil, err
		}
		paved[scope] = ok
		st.Scopes = append(st.Scopes, domain.ScopeStatus{
			Scope: scope,
			Dir:   s.ScopeDir(scope),
			Paved: ok,
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		present, err := a.builder.ImageExists(gctx, st.Tag)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("cannot inspect %s: %v", st.Tag, err))
			return nil
		}
		st.ImagePresent = present
		return nil
	})

	if paved[domain.ScopeCommunity] {
		g.Go(func() error {
			img, err := a.loader.LoadImage(s)
			if err != nil {
				return err
			}
			st.Image = &img
			return nil
		})
	}

	if paved[domain.ScopeProject] {
		g.Go(func() error {
			dockerfile, err := a.scopes.ReadDockerfile(s)
			if err != nil {
				return err
			}
			st.Fingerprint = a.records.Fingerprint(dockerfile)

			rec, err := a.records.Get(s.ProjectDir())
			if err != nil {
				return err
			}
			st.LastBuild = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return st, nil
}
