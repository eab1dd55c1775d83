package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lmittmann/w3/module/eth"
	contractabi "github.com/mxc-foundation/zkdeploy/internal/adapters/abi"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// AddressRegistry reads and writes named addresses through an on-chain
// resolver and the address manager behind it.
type AddressRegistry struct {
	client *Client
}

// NewAddressRegistry creates a new registry adapter
func NewAddressRegistry(client *Client) *AddressRegistry {
	return &AddressRegistry{client: client}
}

// Resolve calls resolve(name, allowZero) on registry
func (r *AddressRegistry) Resolve(ctx context.Context, registry common.Address, name string, allowZero bool) (common.Address, error) {
	key, err := contractabi.Bytes32String(name)
	if err != nil {
		return common.Address{}, err
	}
	client, err := r.client.W3(ctx)
	if err != nil {
		return common.Address{}, err
	}

	var addr common.Address
	if err := client.CallCtx(ctx, eth.CallFunc(registry, funcResolve, key, allowZero).Returns(&addr)); err != nil {
		return common.Address{}, fmt.Errorf("resolve(%s) on %s: %w", name, registry.Hex(), err)
	}
	return addr, nil
}

// AddressManager returns the address manager used by registry
func (r *AddressRegistry) AddressManager(ctx context.Context, registry common.Address) (common.Address, error) {
	client, err := r.client.W3(ctx)
	if err != nil {
		return common.Address{}, err
	}

	var manager common.Address
	if err := client.CallCtx(ctx, eth.CallFunc(registry, funcAddressManager).Returns(&manager)); err != nil {
		return common.Address{}, fmt.Errorf("addressManager() on %s: %w", registry.Hex(), err)
	}
	if manager == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s has no address manager", registry.Hex())
	}
	return manager, nil
}

// SetAddress records target under (chainID, name) in the address manager
func (r *AddressRegistry) SetAddress(ctx context.Context, signer usecase.Signer, manager common.Address, chainID uint64, name string, target common.Address) (common.Hash, error) {
	key, err := contractabi.Bytes32String(name)
	if err != nil {
		return common.Hash{}, err
	}
	calldata, err := funcSetAddress.EncodeArgs(chainID, key, target)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode setAddress: %w", err)
	}

	receipt, err := r.client.transact(ctx, signer, manager, calldata)
	if err != nil {
		return common.Hash{}, fmt.Errorf("setAddress(%d, %s, %s): %w", chainID, name, target.Hex(), err)
	}
	return receipt.TxHash, nil
}

var _ usecase.AddressRegistry = (*AddressRegistry)(nil)
