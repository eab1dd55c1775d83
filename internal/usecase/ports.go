package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// LedgerStore handles persistence of the deployment ledger of one network
type LedgerStore interface {
	// Path is the file the ledger is read from and written to
	Path() string
	// Load reads the ledger. found is false when no file exists yet.
	Load(ctx context.Context) (ledger *models.DeploymentLedger, found bool, err error)
	// Save overwrites the ledger file
	Save(ctx context.Context, ledger *models.DeploymentLedger) error
}

// NetworkIdentity reports which network the process is talking to
type NetworkIdentity interface {
	ChainID(ctx context.Context) (*big.Int, error)
	NetworkName() string
}

// Signer is the account that sends deployment transactions
type Signer interface {
	Address() common.Address
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// ProxyDeployer deploys and upgrades upgradeable proxies
type ProxyDeployer interface {
	// DeployNew deploys an implementation and a proxy initialized with args
	DeployNew(ctx context.Context, signer Signer, contractName string, args []string) (*domain.ProxyDeployment, error)
	// UpgradeInPlace always deploys a fresh implementation and points proxy at it
	UpgradeInPlace(ctx context.Context, signer Signer, proxy common.Address, contractName string) (*domain.ProxyDeployment, error)
}

// FingerprintReader reads the self-reported identity string of a deployed proxy
type FingerprintReader interface {
	ReadFingerprint(ctx context.Context, proxy common.Address) (string, error)
}

// ChainInspector provides read-only chain state
type ChainInspector interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

// AddressRegistry talks to an on-chain name resolver and its address manager
type AddressRegistry interface {
	Resolve(ctx context.Context, registry common.Address, name string, allowZero bool) (common.Address, error)
	AddressManager(ctx context.Context, registry common.Address) (common.Address, error)
	SetAddress(ctx context.Context, signer Signer, manager common.Address, chainID uint64, name string, target common.Address) (common.Hash, error)
}

// ContractCaller sends a transaction to a named method of a compiled contract
type ContractCaller interface {
	Transact(ctx context.Context, signer Signer, contractName string, at common.Address, method string, args []string) (*domain.CallResult, error)
}

// PlanLoader reads a setup plan
type PlanLoader interface {
	Load(ctx context.Context, path string) (*models.SetupPlan, error)
}

// NetworkCatalog lists and resolves configured networks
type NetworkCatalog interface {
	Names() []string
	Resolve(name string) (*config.Network, error)
}

// FileWriter handles file system operations for project scaffolding
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}

// Confirmer asks the operator before state-changing actions
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	GetContract(ctx context.Context, key string) (*models.Contract, error)
	Names() []string
}

// Selector lets the operator pick one of several names
type Selector interface {
	Select(ctx context.Context, label string, items []string) (string, error)
}
