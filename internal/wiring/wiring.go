// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/zancas/containment/internal/adapters/config"
	_ "github.com/zancas/containment/internal/adapters/docker"
	_ "github.com/zancas/containment/internal/adapters/linear"
	_ "github.com/zancas/containment/internal/adapters/lock"
	_ "github.com/zancas/containment/internal/adapters/logger"
	_ "github.com/zancas/containment/internal/adapters/record"
	_ "github.com/zancas/containment/internal/adapters/scope"
	_ "github.com/zancas/containment/internal/adapters/shell"
	_ "github.com/zancas/containment/internal/adapters/telemetry"
	_ "github.com/zancas/containment/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/zancas/containment/internal/app"
)
