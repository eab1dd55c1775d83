package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// OpenLedger loads the ledger of the active network, or starts a fresh one,
// and refuses ledgers recorded for a different network or chain.
type OpenLedger struct {
	store    LedgerStore
	identity NetworkIdentity
	log      *slog.Logger
}

// NewOpenLedger creates a new OpenLedger use case
func NewOpenLedger(store LedgerStore, identity NetworkIdentity, log *slog.Logger) *OpenLedger {
	return &OpenLedger{
		store:    store,
		identity: identity,
		log:      log.With("component", "OpenLedger"),
	}
}

// Run returns a ledger that is safe to mutate for the live network
func (uc *OpenLedger) Run(ctx context.Context) (*models.DeploymentLedger, error) {
	chainID, err := uc.identity.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	networkName := uc.identity.NetworkName()

	uc.log.Debug("loading ledger", "path", uc.store.Path())
	ledger, found, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !found {
		uc.log.Debug("no ledger file, starting fresh", "network", networkName, "chainId", chainID)
		return models.NewDeploymentLedger(networkName, chainID.String()), nil
	}

	if ledger.ChainID != chainID.String() {
		return nil, fmt.Errorf("%s: ledger chain id %s does not match connected chain %s: %w",
			uc.store.Path(), ledger.ChainID, chainID, domain.ErrNetworkMismatch)
	}
	if ledger.Network != networkName {
		return nil, fmt.Errorf("%s: ledger network '%s' does not match '%s': %w",
			uc.store.Path(), ledger.Network, networkName, domain.ErrNetworkMismatch)
	}

	uc.log.Debug("ledger loaded", "contracts", len(ledger.Contracts))
	return ledger, nil
}
