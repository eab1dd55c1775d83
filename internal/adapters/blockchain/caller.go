package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	contractabi "github.com/mxc-foundation/zkdeploy/internal/adapters/abi"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// ContractCaller sends transactions to methods of compiled contracts
type ContractCaller struct {
	client    *Client
	artifacts usecase.ArtifactRepository
	log       *slog.Logger
}

// NewContractCaller creates a new contract caller
func NewContractCaller(client *Client, artifacts usecase.ArtifactRepository, log *slog.Logger) *ContractCaller {
	return &ContractCaller{
		client:    client,
		artifacts: artifacts,
		log:       log.With("component", "ContractCaller"),
	}
}

// Transact encodes method(args...) with the ABI of contractName and sends it to at
func (c *ContractCaller) Transact(ctx context.Context, signer usecase.Signer, contractName string, at common.Address, method string, args []string) (*domain.CallResult, error) {
	contract, err := c.artifacts.GetContract(ctx, contractName)
	if err != nil {
		return nil, err
	}
	parsed, err := contractabi.ParseArtifactABI(contract.Artifact)
	if err != nil {
		return nil, err
	}
	calldata, err := contractabi.PackMethod(parsed, method, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", contractName, err)
	}

	c.log.Info("calling contract", "contract", contractName, "address", at.Hex(), "method", method)
	receipt, err := c.client.transact(ctx, signer, at, calldata)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", contractName, method, err)
	}

	events := contractabi.DecodeReceiptEvents(parsed, receipt)
	return toCallResult(receipt, contractabi.EventNames(events)), nil
}

var _ usecase.ContractCaller = (*ContractCaller)(nil)
