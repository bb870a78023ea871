package ports

import "context"

// ContainerRunner launches the generated run script.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ContainerRunner interface {
	// Run marks script executable and runs it with the standard streams
	// forwarded. A non-zero exit is reported as *domain.ContainerExitError.
	Run(ctx context.Context, script string) error
}
