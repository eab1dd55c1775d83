package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// TxTimeout bounds how long we wait for a transaction to be mined
const TxTimeout = 5 * time.Minute

// waitMined blocks until tx is mined and fails on a reverted receipt
func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	eth, err := c.Eth(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, TxTimeout)
	defer cancel()

	c.log.Debug("waiting for transaction", "tx", tx.Hash().Hex())
	receipt, err := bind.WaitMined(ctx, eth, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transaction %s reverted in block %s: %w",
			tx.Hash().Hex(), receipt.BlockNumber, domain.ErrTransactionFailed)
	}
	return receipt, nil
}

// transact sends raw calldata to a contract and waits for the receipt
func (c *Client) transact(ctx context.Context, signer usecase.Signer, to common.Address, calldata []byte) (*types.Receipt, error) {
	eth, err := c.Eth(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}

	contract := bind.NewBoundContract(to, abi.ABI{}, eth, eth, eth)
	tx, err := contract.RawTransact(opts, calldata)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction to %s: %w", to.Hex(), err)
	}
	c.log.Debug("sent transaction", "to", to.Hex(), "tx", tx.Hash().Hex())

	return c.waitMined(ctx, tx)
}

// deploy sends a contract creation and waits for it to be mined
func (c *Client) deploy(ctx context.Context, signer usecase.Signer, contractABI *abi.ABI, bytecode []byte, params ...interface{}) (common.Address, *types.Receipt, error) {
	eth, err := c.Eth(ctx)
	if err != nil {
		return common.Address{}, nil, err
	}
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return common.Address{}, nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, *contractABI, bytecode, eth, params...)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("failed to send deployment: %w", err)
	}
	c.log.Debug("sent deployment", "address", address.Hex(), "tx", tx.Hash().Hex())

	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		return common.Address{}, receipt, err
	}
	return address, receipt, nil
}

func toCallResult(receipt *types.Receipt, events []string) *domain.CallResult {
	result := &domain.CallResult{
		TxHash:  receipt.TxHash,
		GasUsed: receipt.GasUsed,
		Events:  events,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result
}
