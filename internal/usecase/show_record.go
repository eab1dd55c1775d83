package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/models"
	"github.com/sahilm/fuzzy"
)

// ShowRecordParams contains parameters for showing one ledger record
type ShowRecordParams struct {
	ContractName string
	// Live also reads the current fingerprint from chain
	Live bool
}

// ShowRecordResult is a ledger record plus its live fingerprint when requested
type ShowRecordResult struct {
	Record   *models.ContractRecord
	Network  string
	ChainID  string
	Live     bool
	Observed domain.Fingerprint
}

// ShowRecord is the use case for showing a single ledger record
type ShowRecord struct {
	store       LedgerStore
	fingerprint FingerprintReader
}

// NewShowRecord creates a new ShowRecord use case
func NewShowRecord(store LedgerStore, fingerprint FingerprintReader) *ShowRecord {
	return &ShowRecord{
		store:       store,
		fingerprint: fingerprint,
	}
}

// Run executes the use case
func (uc *ShowRecord) Run(ctx context.Context, params ShowRecordParams) (*ShowRecordResult, error) {
	ledger, found, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", uc.store.Path(), domain.ErrNotFound)
	}

	record := ledger.GetRecord(params.ContractName)
	if record == nil {
		var suggestions []string
		for i, m := range fuzzy.Find(params.ContractName, ledger.Names()) {
			if i == 3 {
				break
			}
			suggestions = append(suggestions, m.Str)
		}
		return nil, &domain.UnknownNameError{
			Kind:        "contract",
			Name:        params.ContractName,
			Suggestions: suggestions,
			Err:         domain.ErrNotFound,
		}
	}

	result := &ShowRecordResult{
		Record:  record,
		Network: ledger.Network,
		ChainID: ledger.ChainID,
	}

	if params.Live {
		result.Live = true
		result.Observed = domain.Unknown()
		value, err := uc.fingerprint.ReadFingerprint(ctx, common.HexToAddress(record.ProxyAddress))
		if err == nil {
			result.Observed = domain.Observed(value)
		}
	}

	return result, nil
}
