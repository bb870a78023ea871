package ports

import "github.com/zancas/containment/internal/core/domain"

// SettingsResolver derives the process settings from the invoking environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsResolver interface {
	// Resolve reads the working directory, environment and host group database.
	Resolve() (*domain.Settings, error)
}
