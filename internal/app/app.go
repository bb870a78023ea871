// Package app implements the application layer for containment.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zancas/containment/internal/core/domain"
	"github.com/zancas/containment/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver ports.SettingsResolver
	scopes   ports.ScopeStore
	loader   ports.ConfigLoader
	builder  ports.ImageBuilder
	records  ports.BuildRecordStore
	locker   ports.ProjectLocker
	runner   ports.ContainerRunner
	watcher  ports.ScopeWatcher
	tracer   ports.Tracer
	logger   ports.Logger
	out      io.Writer
	now      func() time.Time
}

// New creates a new App instance.
func New(
	resolver ports.SettingsResolver,
	scopes ports.ScopeStore,
	loader ports.ConfigLoader,
	builder ports.ImageBuilder,
	records ports.BuildRecordStore,
	locker ports.ProjectLocker,
	runner ports.ContainerRunner,
	watcher ports.ScopeWatcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		resolver: resolver,
		scopes:   scopes,
		loader:   loader,
		builder:  builder,
		records:  records,
		locker:   locker,
		runner:   runner,
		watcher:  watcher,
		tracer:   tracer,
		logger:   log,
		out:      os.Stdout,
		now:      time.Now,
	}
}

// WithOutput sets the writer that receives image build progress.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithClock replaces the clock used to stamp build records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// PaveCommunity creates the community scope in the current directory.
func (a *App) PaveCommunity(_ context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	return a.pave(s, domain.ScopeCommunity)
}

// PaveProfile creates the profile scope in the home directory.
func (a *App) PaveProfile(_ context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	return a.pave(s, domain.ScopeProfile)
}

// PaveProject creates the project scope and writes its first Dockerfile.
// Both the profile and the community scope must already be paved.
func (a *App) PaveProject(ctx context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	if err := a.require(s, domain.ScopeProfile, domain.ScopeCommunity); err != nil {
		return err
	}
	if err := a.pave(s, domain.ScopeProject); err != nil {
		return err
	}
	return a.withLock(s, func() error {
		return a.writeDockerfile(ctx, s)
	})
}

// WriteDockerfile regenerates the project Dockerfile from the three scopes.
func (a *App) WriteDockerfile(ctx context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	if err := a.require(s, domain.Scopes...); err != nil {
		return err
	}
	return a.withLock(s, func() error {
		return a.writeDockerfile(ctx, s)
	})
}

// Build builds the project image from the Dockerfile on disk.
func (a *App) Build(ctx context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	if err := a.require(s, domain.ScopeCommunity, domain.ScopeProject); err != nil {
		return err
	}
	return a.withLock(s, func() error {
		return a.build(ctx, s)
	})
}

// Run starts the project container with the generated run script.
func (a *App) Run(ctx context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}
	if err := a.require(s, domain.ScopeProject); err != nil {
		return err
	}
	return a.run(ctx, s)
}

// Activate paves any missing scope, regenerates the Dockerfile, builds the
// image and starts the container. The project lock is released before the
// container starts.
func (a *App) Activate(ctx context.Context) error {
	s, err := a.resolver.Resolve()
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "activate")
	defer span.End()
	span.SetAttribute("project", s.ProjectName)

	err = a.activate(ctx, s)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (a *App) activate(ctx context.Context, s *domain.Settings) error {
	if err := a.ensure(ctx, s); err != nil {
		return err
	}

	err := a.withLock(s, func() error {
		if err := a.writeDockerfile(ctx, s); err != nil {
			return err
		}
		return a.build(ctx, s)
	})
	if err != nil {
		return err
	}

	return a.run(ctx, s)
}

// ensure paves the scopes that do not exist yet and leaves the others untouched.
func (a *App) ensure(ctx context.Context, s *domain.Settings) error {
	return a.phase(ctx, "ensure", func(_ context.Context, span ports.Span) error {
		var paved []string
		for _, scope := range domain.Scopes {
			ok, err := a.scopes.Exists(s, scope)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
			if err := a.pave(s, scope); err != nil {
				return err
			}
			paved = append(paved, scope.String())
		}
		span.SetAttribute("paved", paved)
		return nil
	})
}

func (a *App) pave(s *domain.Settings, scope domain.Scope) error {
	if err := a.scopes.Pave(s, scope); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("paved %s scope at %s", scope, s.ScopeDir(scope)))
	return nil
}

// require fails with domain.ErrScopeMissing for the first scope that has not been paved.
func (a *App) require(s *domain.Settings, scopes ...domain.Scope) error {
	for _, scope := range scopes {
		ok, err := a.scopes.Exists(s, scope)
		if err != nil {
			return err
		}
		if !ok {
			err := zerr.Wrap(domain.ErrScopeMissing, "pave it first")
			err = zerr.With(err, "scope", scope.String())
			return zerr.With(err, "path", s.ScopeDir(scope))
		}
	}
	return nil
}

func (a *App) withLock(s *domain.Settings, fn func() error) (err error) {
	unlock, err := a.locker.Lock(s.ProjectDir())
	if err != nil {
		return err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()
	return fn()
}

func (a *App) writeDockerfile(ctx context.Context, s *domain.Settings) error {
	return a.phase(ctx, "assemble", func(_ context.Context, span ports.Span) error {
		asm, err := a.loader.Load(s)
		if err != nil {
			return err
		}

		text, skipped, err := asm.Assemble()
		if err != nil {
			return err
		}
		for _, sk := range skipped {
			a.logger.Warn(fmt.Sprintf("skipping unknown ecosystem %q in %s %s",
				sk.Ecosystem, sk.Scope, domain.LangPackagesFileName))
		}
		span.SetAttribute("skipped", len(skipped))

		return a.scopes.WriteDockerfile(s, text)
	})
}

func (a *App) build(ctx context.Context, s *domain.Settings) error {
	return a.phase(ctx, "build", func(ctx context.Context, span ports.Span) error {
		tag := s.ImageTag()
		span.SetAttribute("tag", tag)

		img, err := a.loader.LoadImage(s)
		if err != nil {
			return err
		}

		dockerfile, err := a.scopes.ReadDockerfile(s)
		if err != nil {
			return err
		}
		if dockerfile == nil {
			err := zerr.Wrap(domain.ErrScopeReadFailed, "project has no Dockerfile")
			return zerr.With(err, "path", s.ScopeFile(domain.ScopeProject, domain.DockerfileName))
		}

		if err := a.builder.Build(ctx, s, img, a.out); err != nil {
			return err
		}

		return a.records.Put(s.ProjectDir(), domain.BuildRecord{
			Tag:         tag,
			Fingerprint: a.records.Fingerprint(dockerfile),
			BuiltAt:     a.now().UTC(),
		})
	})
}

func (a *App) run(ctx context.Context, s *domain.Settings) error {
	return a.phase(ctx, "run", func(ctx context.Context, _ ports.Span) error {
		return a.runner.Run(ctx, s.ScopeFile(domain.ScopeProject, domain.RunScriptName))
	})
}

// phase runs fn inside a span named name and records its error.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
