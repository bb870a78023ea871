package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/docker"    //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/lock"      //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/record"    //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/scope"     //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/zancas/containment/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			scope.NodeID,
			config.NodeID,
			docker.NodeID,
			record.NodeID,
			lock.NodeID,
			shell.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per port
func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.SettingsResolver](ctx)
	if err != nil {
		return nil, err
	}

	scopes, err := graft.Dep[ports.ScopeStore](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.ImageBuilder](ctx)
	if err != nil {
		return nil, err
	}

	records, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.ProjectLocker](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ContainerRunner](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.ScopeWatcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, scopes, loader, builder, records, locker, runner, w, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
