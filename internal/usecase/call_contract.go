package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// CallContractParams contains parameters for calling a method on a deployed contract
type CallContractParams struct {
	Ledger       *models.DeploymentLedger
	Signer       Signer
	ContractName string
	Method       string
	// Args may contain references such as ${env.CONTROLLER_ADDRESS}
	Args []string
}

// CallContractResult describes the mined transaction
type CallContractResult struct {
	ContractName string
	Address      common.Address
	Method       string
	Args         []string
	Call         *domain.CallResult
}

// CallContract sends a transaction to the proxy of a contract recorded in the ledger
type CallContract struct {
	cfg      *config.RuntimeConfig
	identity NetworkIdentity
	caller   ContractCaller
	sink     ProgressSink
}

// NewCallContract creates a new CallContract use case
func NewCallContract(cfg *config.RuntimeConfig, identity NetworkIdentity, caller ContractCaller, sink ProgressSink) *CallContract {
	return &CallContract{
		cfg:      cfg,
		identity: identity,
		caller:   caller,
		sink:     sink,
	}
}

// Run executes the use case
func (uc *CallContract) Run(ctx context.Context, params CallContractParams) (*CallContractResult, error) {
	record := params.Ledger.GetRecord(params.ContractName)
	if record == nil {
		return nil, fmt.Errorf("%s is not deployed: %w", params.ContractName, domain.ErrMissingPrerequisite)
	}

	address, err := recordProxy(params.ContractName, record)
	if err != nil {
		return nil, err
	}

	chainID, err := uc.identity.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	scope := newSetupScope(params.Ledger, networkAddresses(uc.cfg), params.Signer.Address(), chainID.String())
	args, err := scope.expandAll(params.Args)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "calling",
		Message: fmt.Sprintf("Calling %s.%s", params.ContractName, params.Method),
		Spinner: true,
	})

	call, err := uc.caller.Transact(ctx, params.Signer, params.ContractName, address, params.Method, args)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "calling"})
	if err != nil {
		return nil, fmt.Errorf("failed to call %s.%s: %w", params.ContractName, params.Method, err)
	}

	return &CallContractResult{
		ContractName: params.ContractName,
		Address:      address,
		Method:       params.Method,
		Args:         args,
		Call:         call,
	}, nil
}
