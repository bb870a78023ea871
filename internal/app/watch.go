package app

import (
	"context"
	"fmt"

	"github.com/zancas/containment/internal/core/domain"
)

// Watch regenerates the Dockerfile whenever a scope configuration file
// changes, until ctx is done. Failed regenerations are logged and the
// watch continues.
func (a *App) Watch(ctx context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	if err := a.require(s, domain.Scopes...); err != nil {
		return err
	}

	dirs := make([]string, 0, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		dirs = append(dirs, s.ScopeDir(scope))
	}

	a.logger.Info(fmt.Sprintf("watching %d scopes of %s", len(dirs), s.ProjectName))

	return a.watcher.Watch(ctx, dirs, func(paths []string) {
		a.logger.Info(fmt.Sprintf("%d scope files changed, regenerating Dockerfile", len(paths)))
		err := a.withLock(s, func() error {
			return a.writeDockerfile(ctx, s)
		})
		if err != nil {
			a.logger.Error(err)
		}
	})
}
