//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/mxc-foundation/zkdeploy/internal/adapters"
	"github.com/mxc-foundation/zkdeploy/internal/config"
	"github.com/mxc-foundation/zkdeploy/internal/logging"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewOpenLedger,
		usecase.NewReconcileContract,
		usecase.NewRunSetup,
		usecase.NewRegisterAddress,
		usecase.NewCallContract,
		usecase.NewPreflight,
		usecase.NewListLedger,
		usecase.NewShowRecord,
		usecase.NewListNetworks,
		usecase.NewInitProject,

		// App
		NewApp,
	)
	return nil, nil, nil
}
