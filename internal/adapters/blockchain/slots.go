package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ERC-1967 storage slots
var (
	// bytes32(uint256(keccak256("eip1967.proxy.implementation")) - 1)
	ImplementationSlot = common.HexToHash("0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc")
	// bytes32(uint256(keccak256("eip1967.proxy.admin")) - 1)
	AdminSlot = common.HexToHash("0xb53127684a568b3173ae13b9f8a6016e243e63b6e8ee1178d6a717850b5d6103")
)

// slotAddress decodes an address stored right-aligned in a 32 byte slot
func slotAddress(value []byte) (common.Address, error) {
	if len(value) != 32 {
		return common.Address{}, fmt.Errorf("unexpected slot length %d", len(value))
	}
	return common.BytesToAddress(value[12:]), nil
}

// ReadImplementation returns the implementation address of an ERC-1967 proxy
func (c *Client) ReadImplementation(ctx context.Context, proxy common.Address) (common.Address, error) {
	addr, err := c.readSlotAddress(ctx, proxy, ImplementationSlot)
	if err != nil {
		return common.Address{}, err
	}
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s is not an ERC-1967 proxy (implementation slot is empty)", proxy.Hex())
	}
	return addr, nil
}

// ReadAdmin returns the admin of a transparent proxy. UUPS proxies have no
// admin and yield the zero address.
func (c *Client) ReadAdmin(ctx context.Context, proxy common.Address) (common.Address, error) {
	return c.readSlotAddress(ctx, proxy, AdminSlot)
}

func (c *Client) readSlotAddress(ctx context.Context, proxy common.Address, slot common.Hash) (common.Address, error) {
	eth, err := c.Eth(ctx)
	if err != nil {
		return common.Address{}, err
	}
	value, err := eth.StorageAt(ctx, proxy, slot, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read slot %s of %s: %w", slot.Hex(), proxy.Hex(), err)
	}
	return slotAddress(value)
}
