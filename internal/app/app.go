package app

import (
	"log/slog"

	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Signer    usecase.Signer
	Confirmer usecase.Confirmer
	Selector  usecase.Selector
	Plans     usecase.PlanLoader
	Progress  usecase.ProgressSink

	// Use cases
	OpenLedger        *usecase.OpenLedger
	ReconcileContract *usecase.ReconcileContract
	RunSetup          *usecase.RunSetup
	RegisterAddress   *usecase.RegisterAddress
	CallContract      *usecase.CallContract
	Preflight         *usecase.Preflight
	ListLedger        *usecase.ListLedger
	ShowRecord        *usecase.ShowRecord
	ListNetworks      *usecase.ListNetworks
	InitProject       *usecase.InitProject
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	signer usecase.Signer,
	confirmer usecase.Confirmer,
	selector usecase.Selector,
	plans usecase.PlanLoader,
	progress usecase.ProgressSink,
	openLedger *usecase.OpenLedger,
	reconcileContract *usecase.ReconcileContract,
	runSetup *usecase.RunSetup,
	registerAddress *usecase.RegisterAddress,
	callContract *usecase.CallContract,
	preflight *usecase.Preflight,
	listLedger *usecase.ListLedger,
	showRecord *usecase.ShowRecord,
	listNetworks *usecase.ListNetworks,
	initProject *usecase.InitProject,
) *App {
	return &App{
		Config:            cfg,
		Log:               log,
		Signer:            signer,
		Confirmer:         confirmer,
		Selector:          selector,
		Plans:             plans,
		Progress:          progress,
		OpenLedger:        openLedger,
		ReconcileContract: reconcileContract,
		RunSetup:          runSetup,
		RegisterAddress:   registerAddress,
		CallContract:      callContract,
		Preflight:         preflight,
		ListLedger:        listLedger,
		ShowRecord:        showRecord,
		ListNetworks:      listNetworks,
		InitProject:       initProject,
	}
}
