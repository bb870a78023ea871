// Package watcher reports changes to scope configuration files.
package watcher

import (
	"context"
	"path/filepath"
	"slices"
	"time"
	"unique"

	"github.com/fsnotify/fsnotify"
	"github.com/zancas/containment/internal/core/domain"
	"github.com/zancas/containment/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScopeWatcher = (*Watcher)(nil)

// DefaultWindow is how long the watcher waits for further events before
// reporting a batch.
const DefaultWindow = 200 * time.Millisecond

// watchedFiles are the scope files that feed the Dockerfile.
var watchedFiles = map[string]bool{
	domain.BaseFileName:          true,
	domain.ImageSettingsFileName: true,
	domain.OSPackagesFileName:    true,
	domain.LangPackagesFileName:  true,
}

// Watcher implements ports.ScopeWatcher using fsnotify.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a watcher that coalesces events over window.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{logger: logger, window: window}
}

// Watch blocks until ctx is done, reporting changed configuration files
// in batches. Each batch is sorted and free of duplicates.
//
//nolint:cyclop // single event loop over watcher, timer and context
func (w *Watcher) Watch(ctx context.Context, dirs []string, onChange func(paths []string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.Fail(domain.ErrWatchFailed, err)
	}
	defer func() { _ = fsw.Close() }()

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return zerr.With(domain.Fail(domain.ErrWatchFailed, err), "path", dir)
		}
	}

	pending := make(map[unique.Handle[string]]struct{})
	timer := time.NewTimer(w.window)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			pending[unique.Make(event.Name)] = struct{}{}
			timer.Reset(w.window)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Warn("watcher: " + err.Error())
			}

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for handle := range pending {
				paths = append(paths, handle.Value())
			}
			clear(pending)
			slices.Sort(paths)
			onChange(paths)
		}
	}
}

// relevant reports whether event touches a watched scope file.
// Chmod-only events are ignored.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return watchedFiles[filepath.Base(event.Name)]
}
