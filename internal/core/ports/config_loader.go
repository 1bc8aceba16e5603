package ports

import "go.trai.ch/wl/internal/core/domain"

// ConfigLoader defines the interface for loading a plan document.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and parses the plan at path. The result is not validated.
	Load(path string) (*domain.Plan, error)
}
