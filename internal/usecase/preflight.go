package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
)

// PreflightResult summarizes the signer and chain before any transaction
type PreflightResult struct {
	Network     string
	Signer      common.Address
	ChainID     *big.Int
	BlockNumber uint64
	Balance     *big.Int
}

// Preflight checks that the signer can pay for transactions on the active network
type Preflight struct {
	identity  NetworkIdentity
	inspector ChainInspector
	signer    Signer
}

// NewPreflight creates a new Preflight use case
func NewPreflight(identity NetworkIdentity, inspector ChainInspector, signer Signer) *Preflight {
	return &Preflight{
		identity:  identity,
		inspector: inspector,
		signer:    signer,
	}
}

// Run gathers chain state. A zero balance is returned together with the result
// so callers can still render what was found.
func (uc *Preflight) Run(ctx context.Context) (*PreflightResult, error) {
	chainID, err := uc.identity.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	block, err := uc.inspector.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	result := &PreflightResult{
		Network:     uc.identity.NetworkName(),
		Signer:      uc.signer.Address(),
		ChainID:     chainID,
		BlockNumber: block,
	}

	if result.Signer == (common.Address{}) {
		return result, domain.ErrNoSigner
	}

	balance, err := uc.inspector.BalanceAt(ctx, result.Signer)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", result.Signer.Hex(), err)
	}
	result.Balance = balance

	if balance.Sign() == 0 {
		return result, fmt.Errorf("%s: %w", result.Signer.Hex(), domain.ErrZeroBalance)
	}

	return result, nil
}
