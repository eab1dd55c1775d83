package usecase

import (
	"context"
	"sort"

	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
)

// ListLedgerParams contains parameters for listing ledger records
type ListLedgerParams struct {
	// SortByName orders records alphabetically instead of insertion order
	SortByName bool
}

// ListLedgerResult contains the records of one ledger file
type ListLedgerResult struct {
	Path    string
	Found   bool
	Network string
	ChainID string
	Records []*models.ContractRecord
	// Drifted counts records whose last observed fingerprint differs from the expectation
	Drifted int
}

// ListLedger is a read-only view over the ledger file. It never saves.
type ListLedger struct {
	store LedgerStore
}

// NewListLedger creates a new ListLedger use case
func NewListLedger(store LedgerStore) *ListLedger {
	return &ListLedger{store: store}
}

// Run executes the use case
func (uc *ListLedger) Run(ctx context.Context, params ListLedgerParams) (*ListLedgerResult, error) {
	ledger, found, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListLedgerResult{
		Path:  uc.store.Path(),
		Found: found,
	}
	if !found {
		return result, nil
	}

	result.Network = ledger.Network
	result.ChainID = ledger.ChainID
	result.Records = append([]*models.ContractRecord(nil), ledger.Contracts...)

	if params.SortByName {
		sort.SliceStable(result.Records, func(i, j int) bool {
			return result.Records[i].ContractName < result.Records[j].ContractName
		})
	}

	for _, r := range result.Records {
		if r.VerificationFingerprint != r.ExpectedFingerprint {
			result.Drifted++
		}
	}

	return result, nil
}
