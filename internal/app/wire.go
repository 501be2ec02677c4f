//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/polymorpher/band-oracle-reader/internal/adapters"
	"github.com/polymorpher/band-oracle-reader/internal/config"
	"github.com/polymorpher/band-oracle-reader/internal/logging"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployOracleReader,
		usecase.NewPlanDeployment,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
