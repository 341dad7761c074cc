package ports

import "github.com/assetstamp/stamp/internal/core/domain"

// ConfigLoader loads the project definition from a stampfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the project with its units canonicalized.
	Load(cwd string) (*domain.Project, error)

	// DiscoverRoot walks up from cwd to find the directory containing the
	// stampfile. Returns domain.ErrConfigNotFound if none exists.
	DiscoverRoot(cwd string) (string, error)
}
