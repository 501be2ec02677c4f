package app

import (
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployOracleReader *usecase.DeployOracleReader
	PlanDeployment     *usecase.PlanDeployment
	ListNetworks       *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployOracleReader *usecase.DeployOracleReader,
	planDeployment *usecase.PlanDeployment,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:             cfg,
		DeployOracleReader: deployOracleReader,
		PlanDeployment:     planDeployment,
		ListNetworks:       listNetworks,
	}, nil
}
