package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// RunSetupParams contains parameters for running a setup plan
type RunSetupParams struct {
	Plan   *models.SetupPlan
	Ledger *models.DeploymentLedger
	Signer Signer
}

// SetupStepResult is the outcome of one executed step
type SetupStepResult struct {
	Index     int
	Step      *models.SetupStep
	Reconcile *ReconcileContractResult
	Resolved  common.Address
	Manager   common.Address
	Call      *domain.CallResult
}

// RunSetupResult contains the executed steps in order
type RunSetupResult struct {
	Plan  *models.SetupPlan
	Steps []*SetupStepResult
}

// RunSetup executes a setup plan step by step. It stops at the first failure;
// re-running is safe because every deploy step reconciles against the ledger.
type RunSetup struct {
	cfg       *config.RuntimeConfig
	identity  NetworkIdentity
	reconcile *ReconcileContract
	registry  AddressRegistry
	caller    ContractCaller
	sink      ProgressSink
	log       *slog.Logger
}

// NewRunSetup creates a new RunSetup use case
func NewRunSetup(
	cfg *config.RuntimeConfig,
	identity NetworkIdentity,
	reconcile *ReconcileContract,
	registry AddressRegistry,
	caller ContractCaller,
	sink ProgressSink,
	log *slog.Logger,
) *RunSetup {
	return &RunSetup{
		cfg:       cfg,
		identity:  identity,
		reconcile: reconcile,
		registry:  registry,
		caller:    caller,
		sink:      sink,
		log:       log.With("component", "RunSetup"),
	}
}

// Run executes the use case
func (uc *RunSetup) Run(ctx context.Context, params RunSetupParams) (*RunSetupResult, error) {
	if params.Plan == nil || params.Ledger == nil || params.Signer == nil {
		return nil, fmt.Errorf("plan, ledger and signer are required")
	}
	if err := params.Plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	chainID, err := uc.identity.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	scope := newSetupScope(params.Ledger, networkAddresses(uc.cfg), params.Signer.Address(), chainID.String())

	// Every reference must be satisfiable before the first transaction is sent
	if err := scope.checkPlan(params.Plan); err != nil {
		return nil, err
	}

	result := &RunSetupResult{Plan: params.Plan}
	total := len(params.Plan.Steps)

	for i, step := range params.Plan.Steps {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "setup",
			Current: i + 1,
			Total:   total,
			Message: step.String(),
		})
		uc.log.Debug("running step", "index", i+1, "step", step.String())

		stepResult, err := uc.runStep(ctx, scope, params, step)
		if err != nil {
			return result, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		stepResult.Index = i + 1
		stepResult.Step = step
		result.Steps = append(result.Steps, stepResult)
	}

	return result, nil
}

func (uc *RunSetup) runStep(ctx context.Context, scope *setupScope, params RunSetupParams, step *models.SetupStep) (*SetupStepResult, error) {
	switch step.Kind() {
	case models.StepDeploy:
		args, err := scope.expandAll(step.Args)
		if err != nil {
			return nil, err
		}
		res, err := uc.reconcile.Run(ctx, ReconcileContractParams{
			Ledger:       params.Ledger,
			Signer:       params.Signer,
			ContractName: step.Deploy,
			InitArgs:     args,
		})
		if err != nil {
			return nil, err
		}
		return &SetupStepResult{Reconcile: res}, nil

	case models.StepResolve:
		registry, err := scope.address(step.Registry)
		if err != nil {
			return nil, err
		}
		addr, err := uc.registry.Resolve(ctx, registry, step.Resolve, false)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve '%s': %w", step.Resolve, err)
		}
		scope.resolved[step.As] = addr
		uc.log.Info("resolved", "name", step.Resolve, "as", step.As, "address", addr.Hex())
		return &SetupStepResult{Resolved: addr}, nil

	case models.StepCall:
		record := params.Ledger.GetRecord(step.Call)
		if record == nil {
			return nil, fmt.Errorf("%s is not deployed: %w", step.Call, domain.ErrMissingPrerequisite)
		}
		proxy, err := recordProxy(step.Call, record)
		if err != nil {
			return nil, err
		}
		args, err := scope.expandAll(step.Args)
		if err != nil {
			return nil, err
		}
		call, err := uc.caller.Transact(ctx, params.Signer, step.Call, proxy, step.Method, args)
		if err != nil {
			return nil, err
		}
		return &SetupStepResult{Call: call}, nil

	case models.StepRegister:
		registry, err := scope.address(step.Registry)
		if err != nil {
			return nil, err
		}
		target, err := scope.address(step.Target)
		if err != nil {
			return nil, err
		}
		res, err := registerAddress(ctx, uc.registry, params.Signer, registry, scope.chainID, step.Register, target)
		if err != nil {
			return nil, err
		}
		uc.log.Info("registered", "name", step.Register, "address", target.Hex(), "resolved", res.Resolved.Hex())
		return &SetupStepResult{Resolved: res.Resolved, Manager: res.Manager, Call: res.Call}, nil
	}

	return nil, fmt.Errorf("unsupported step")
}

func networkAddresses(cfg *config.RuntimeConfig) map[string]string {
	if cfg == nil || cfg.Network == nil {
		return nil
	}
	return cfg.Network.Addresses
}
