package ports

// ProjectLocker serialises mutations of one project scope.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type ProjectLocker interface {
	// Lock takes an exclusive lock on dir without waiting.
	// It fails with domain.ErrProjectLocked if another process holds it.
	Lock(dir string) (unlock func() error, err error)
}
