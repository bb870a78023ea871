package ports

import "context"

// ScopeWatcher reports changes to scope configuration files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type ScopeWatcher interface {
	// Watch blocks until ctx is done, calling onChange with the coalesced
	// set of changed configuration files.
	Watch(ctx context.Context, dirs []string, onChange func(paths []string)) error
}
