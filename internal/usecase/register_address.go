package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// RegisterAddressParams contains parameters for publishing an address to a registry
type RegisterAddressParams struct {
	Ledger *models.DeploymentLedger
	Signer Signer
	Name   string
	// Registry is a hex address or a reference such as ${address.TaikoL1}
	Registry string
	// Target is a hex address or a reference such as ${ledger.ZkCenter}
	Target string
}

// RegisterAddressResult describes a registration
type RegisterAddressResult struct {
	Name     string
	Registry common.Address
	Manager  common.Address
	Target   common.Address
	Resolved common.Address
	ChainID  *big.Int
	Call     *domain.CallResult
}

// RegisterAddress sets name to target in the address manager behind a registry
// and reads it back through the registry.
type RegisterAddress struct {
	identity NetworkIdentity
	registry AddressRegistry
	cfg      *config.RuntimeConfig
}

// NewRegisterAddress creates a new RegisterAddress use case
func NewRegisterAddress(identity NetworkIdentity, registry AddressRegistry, cfg *config.RuntimeConfig) *RegisterAddress {
	return &RegisterAddress{
		identity: identity,
		registry: registry,
		cfg:      cfg,
	}
}

// Run executes the use case
func (uc *RegisterAddress) Run(ctx context.Context, params RegisterAddressParams) (*RegisterAddressResult, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	chainID, err := uc.identity.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	scope := newSetupScope(params.Ledger, networkAddresses(uc.cfg), params.Signer.Address(), chainID.String())
	registry, err := scope.address(params.Registry)
	if err != nil {
		return nil, err
	}
	target, err := scope.address(params.Target)
	if err != nil {
		return nil, err
	}

	res, err := registerAddress(ctx, uc.registry, params.Signer, registry, chainID.String(), params.Name, target)
	if err != nil {
		return nil, err
	}
	res.ChainID = chainID
	return res, nil
}

func registerAddress(
	ctx context.Context,
	registry AddressRegistry,
	signer Signer,
	registryAddr common.Address,
	chainID string,
	name string,
	target common.Address,
) (*RegisterAddressResult, error) {
	id, ok := new(big.Int).SetString(chainID, 10)
	if !ok || !id.IsUint64() {
		return nil, fmt.Errorf("invalid chain id %q", chainID)
	}

	manager, err := registry.AddressManager(ctx, registryAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to get address manager of %s: %w", registryAddr.Hex(), err)
	}

	hash, err := registry.SetAddress(ctx, signer, manager, id.Uint64(), name, target)
	if err != nil {
		return nil, fmt.Errorf("failed to set address '%s': %w", name, err)
	}

	resolved, err := registry.Resolve(ctx, registryAddr, name, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s' after registering: %w", name, err)
	}

	return &RegisterAddressResult{
		Name:     name,
		Registry: registryAddr,
		Manager:  manager,
		Target:   target,
		Resolved: resolved,
		ChainID:  id,
		Call:     &domain.CallResult{TxHash: hash},
	}, nil
}
