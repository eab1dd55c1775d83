package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// ReconcileContractParams contains parameters for reconciling one contract
type ReconcileContractParams struct {
	Ledger       *models.DeploymentLedger
	Signer       Signer
	ContractName string
	InitArgs     []string
}

// ReconcileContractResult describes what reconciliation did
type ReconcileContractResult struct {
	Action     domain.ReconcileAction
	Record     *models.ContractRecord
	Previous   *models.ContractRecord
	Observed   domain.Fingerprint
	Deployment *domain.ProxyDeployment
	LedgerPath string
}

// ReconcileContract deploys a contract behind a proxy, upgrades it when the
// live fingerprint drifted from the ledger, or leaves it alone.
type ReconcileContract struct {
	store       LedgerStore
	deployer    ProxyDeployer
	fingerprint FingerprintReader
	sink        ProgressSink
	log         *slog.Logger
	now         func() time.Time
}

// NewReconcileContract creates a new ReconcileContract use case
func NewReconcileContract(
	store LedgerStore,
	deployer ProxyDeployer,
	fingerprint FingerprintReader,
	sink ProgressSink,
	log *slog.Logger,
) *ReconcileContract {
	return &ReconcileContract{
		store:       store,
		deployer:    deployer,
		fingerprint: fingerprint,
		sink:        sink,
		log:         log.With("component", "ReconcileContract"),
		now:         time.Now,
	}
}

// Run reconciles params.ContractName against the ledger and always saves the ledger
func (uc *ReconcileContract) Run(ctx context.Context, params ReconcileContractParams) (*ReconcileContractResult, error) {
	if params.Ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	if params.ContractName == "" {
		return nil, fmt.Errorf("contract name is required")
	}

	var result *ReconcileContractResult
	var err error

	existing := params.Ledger.GetRecord(params.ContractName)
	if existing == nil {
		result, err = uc.deploy(ctx, params)
	} else {
		result, err = uc.reconcileExisting(ctx, params, existing)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, params.Ledger); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}
	result.LedgerPath = uc.store.Path()

	return result, nil
}

func (uc *ReconcileContract) deploy(ctx context.Context, params ReconcileContractParams) (*ReconcileContractResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "deploying",
		Message: fmt.Sprintf("Deploying %s", params.ContractName),
		Spinner: true,
	})

	deployment, err := uc.deployer.DeployNew(ctx, params.Signer, params.ContractName, params.InitArgs)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deploying"})
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", params.ContractName, err)
	}

	observed := uc.readFingerprint(ctx, params.ContractName, deployment.Proxy)
	record := uc.newRecord(params, deployment, observed)
	params.Ledger.SetRecord(record)

	return &ReconcileContractResult{
		Action:     domain.ActionDeployed,
		Record:     record,
		Observed:   observed,
		Deployment: deployment,
	}, nil
}

func (uc *ReconcileContract) reconcileExisting(
	ctx context.Context,
	params ReconcileContractParams,
	existing *models.ContractRecord,
) (*ReconcileContractResult, error) {
	proxy, err := recordProxy(params.ContractName, existing)
	if err != nil {
		return nil, err
	}

	observed := uc.readFingerprint(ctx, params.ContractName, proxy)
	uc.log.Info("already deployed",
		"contract", params.ContractName,
		"name2", observed.String(),
		"expected", existing.ExpectedFingerprint,
	)

	if observed.Matches(existing.ExpectedFingerprint) {
		return &ReconcileContractResult{
			Action:   domain.ActionUnchanged,
			Record:   existing,
			Previous: existing,
			Observed: observed,
		}, nil
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "upgrading",
		Message: fmt.Sprintf("Upgrading %s", params.ContractName),
		Spinner: true,
	})

	deployment, err := uc.deployer.UpgradeInPlace(ctx, params.Signer, proxy, params.ContractName)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "upgrading"})
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade %s: %w", params.ContractName, err)
	}

	observed = uc.readFingerprint(ctx, params.ContractName, deployment.Proxy)
	record := uc.newRecord(params, deployment, observed)
	params.Ledger.SetRecord(record)

	return &ReconcileContractResult{
		Action:     domain.ActionUpgraded,
		Record:     record,
		Previous:   existing,
		Observed:   observed,
		Deployment: deployment,
	}, nil
}

// readFingerprint never fails. A failed read is logged and reported as unknown.
func (uc *ReconcileContract) readFingerprint(ctx context.Context, contractName string, proxy common.Address) domain.Fingerprint {
	value, err := uc.fingerprint.ReadFingerprint(ctx, proxy)
	if err != nil {
		uc.log.Warn("failed to call name2()", "contract", contractName, "proxy", proxy.Hex(), "error", err)
		return domain.Unknown()
	}
	return domain.Observed(value)
}

// newRecord makes the observed fingerprint the expectation for the next run.
func (uc *ReconcileContract) newRecord(
	params ReconcileContractParams,
	deployment *domain.ProxyDeployment,
	observed domain.Fingerprint,
) *models.ContractRecord {
	deployer := ""
	if params.Signer != nil {
		deployer = params.Signer.Address().Hex()
	}
	return &models.ContractRecord{
		DeployerAddress:         deployer,
		ContractName:            params.ContractName,
		VerificationFingerprint: observed.Value(),
		LastUpdated:             models.FormatTime(uc.now()),
		ProxyAddress:            deployment.Proxy.Hex(),
		ImplementationAddress:   deployment.Implementation.Hex(),
		ExpectedFingerprint:     observed.Value(),
	}
}

// recordProxy returns the proxy address of a ledger record, refusing entries
// that do not hold a hex address.
func recordProxy(name string, record *models.ContractRecord) (common.Address, error) {
	if !common.IsHexAddress(record.ProxyAddress) {
		return common.Address{}, fmt.Errorf("%s: ledger proxy address %q is invalid", name, record.ProxyAddress)
	}
	return common.HexToAddress(record.ProxyAddress), nil
}
