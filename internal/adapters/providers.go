package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/mxc-foundation/zkdeploy/internal/adapters/artifacts"
	"github.com/mxc-foundation/zkdeploy/internal/adapters/blockchain"
	"github.com/mxc-foundation/zkdeploy/internal/adapters/fs"
	"github.com/mxc-foundation/zkdeploy/internal/adapters/interactive"
	"github.com/mxc-foundation/zkdeploy/internal/adapters/plan"
	"github.com/mxc-foundation/zkdeploy/internal/adapters/progress"
	internalconfig "github.com/mxc-foundation/zkdeploy/internal/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// ProvideProjectConfig provides the loaded zkdeploy.toml, or defaults when there is none
func ProvideProjectConfig(cfg *config.RuntimeConfig) *config.ProjectConfig {
	if cfg.Project != nil {
		return cfg.Project
	}
	project := &config.ProjectConfig{}
	project.ApplyDefaults()
	return project
}

// ProvideClient provides the chain client and closes it on cleanup
func ProvideClient(cfg *config.RuntimeConfig, log *slog.Logger) (*blockchain.Client, func()) {
	client := blockchain.NewClient(cfg, log)
	return client, client.Close
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLedgerStoreAdapter,
	wire.Bind(new(usecase.LedgerStore), new(*fs.LedgerStoreAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ArtifactSet provides access to Hardhat build output
var ArtifactSet = wire.NewSet(
	artifacts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Repository)),
)

// BlockchainSet provides RPC-backed implementations
var BlockchainSet = wire.NewSet(
	ProvideClient,
	wire.Bind(new(usecase.NetworkIdentity), new(*blockchain.Client)),
	wire.Bind(new(usecase.ChainInspector), new(*blockchain.Client)),

	blockchain.NewKeySigner,
	wire.Bind(new(usecase.Signer), new(*blockchain.KeySigner)),

	blockchain.NewProxyDeployer,
	wire.Bind(new(usecase.ProxyDeployer), new(*blockchain.ProxyDeployer)),

	blockchain.NewFingerprintReader,
	wire.Bind(new(usecase.FingerprintReader), new(*blockchain.FingerprintReader)),

	blockchain.NewAddressRegistry,
	wire.Bind(new(usecase.AddressRegistry), new(*blockchain.AddressRegistry)),

	blockchain.NewContractCaller,
	wire.Bind(new(usecase.ContractCaller), new(*blockchain.ContractCaller)),
)

// PlanSet provides setup plan parsing
var PlanSet = wire.NewSet(
	plan.NewLoader,
	wire.Bind(new(usecase.PlanLoader), new(*plan.Loader)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Selector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	ProvideProjectConfig,
	internalconfig.NewNetworkResolver,
	wire.Bind(new(usecase.NetworkCatalog), new(*internalconfig.NetworkResolver)),
)

// ProgressSet provides the progress sink for the output mode
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ArtifactSet,
	BlockchainSet,
	PlanSet,
	InteractiveSet,
	ConfigSet,
	ProgressSet,
)
