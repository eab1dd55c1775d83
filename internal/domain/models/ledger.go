package models

import (
	"time"

	"github.com/samber/lo"
)

// TimeLayout is the timestamp format stored in ledger files.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// ContractRecord is the latest known on-chain state of one logical contract.
type ContractRecord struct {
	DeployerAddress         string `json:"deployer"`
	ContractName            string `json:"contractFactoryName"`
	VerificationFingerprint string `json:"contractName2"`
	LastUpdated             string `json:"timeUpdated"`
	ProxyAddress            string `json:"proxyAddress"`
	ImplementationAddress   string `json:"impAddress"`
	ExpectedFingerprint     string `json:"expectedName2"`
}

// FormatTime renders t the way LastUpdated is stored.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// UpdatedAt parses LastUpdated. The zero time is returned for unparsable values.
func (r *ContractRecord) UpdatedAt() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.LastUpdated)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DeploymentLedger maps logical contract names to their deployments on one network.
type DeploymentLedger struct {
	Network   string            `json:"network"`
	ChainID   string            `json:"chainId"`
	Contracts []*ContractRecord `json:"contractList"`
}

// NewDeploymentLedger returns an empty ledger bound to a network.
func NewDeploymentLedger(network, chainID string) *DeploymentLedger {
	return &DeploymentLedger{
		Network:   network,
		ChainID:   chainID,
		Contracts: []*ContractRecord{},
	}
}

// GetRecord returns the record for name, or nil.
func (l *DeploymentLedger) GetRecord(name string) *ContractRecord {
	record, ok := lo.Find(l.Contracts, func(r *ContractRecord) bool {
		return r.ContractName == name
	})
	if !ok {
		return nil
	}
	return record
}

// SetRecord replaces the record with the same contract name in place, or
// appends it. It does not persist anything.
func (l *DeploymentLedger) SetRecord(record *ContractRecord) {
	_, idx, found := lo.FindIndexOf(l.Contracts, func(r *ContractRecord) bool {
		return r.ContractName == record.ContractName
	})
	if found {
		l.Contracts[idx] = record
		return
	}
	l.Contracts = append(l.Contracts, record)
}

// Names returns the contract names in insertion order.
func (l *DeploymentLedger) Names() []string {
	return lo.Map(l.Contracts, func(r *ContractRecord, _ int) string {
		return r.ContractName
	})
}
