// Package lock provides the advisory lock that serialises project mutations.
package lock

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Locker implements ports.ProjectLocker with flock(2) on <dir>/.lock.
type Locker struct{}

// NewLocker creates a new Locker.
func NewLocker() *Locker {
	return &Locker{}
}

// Lock takes an exclusive, non-blocking lock on dir. The returned function
// releases it and closes the lock file.
func (l *Locker) Lock(dir string) (func() error, error) {
	path := filepath.Join(dir, domain.LockFileName)

	//nolint:gosec // path is derived from resolved settings
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", path)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, zerr.With(zerr.Wrap(domain.ErrProjectLocked, "another invocation is using this project"), "path", path)
		}
		return nil, zerr.With(domain.Fail(domain.ErrProjectLocked, err), "path", path)
	}

	return func() error {
		unlockErr := unix.Flock(int(f.Fd()), unix.LOCK_UN)
		closeErr := f.Close()
		if unlockErr != nil {
			return zerr.With(zerr.Wrap(unlockErr, "failed to release project lock"), "path", path)
		}
		return closeErr
	}, nil
}
