package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ProxyKind selects the upgradeable proxy pattern used for new deployments.
type ProxyKind string

const (
	ProxyKindUUPS        ProxyKind = "uups"
	ProxyKindTransparent ProxyKind = "transparent"
)

// ParseProxyKind validates a configured proxy kind.
func ParseProxyKind(s string) (ProxyKind, error) {
	switch ProxyKind(s) {
	case ProxyKindUUPS, ProxyKindTransparent:
		return ProxyKind(s), nil
	case "":
		return ProxyKindTransparent, nil
	default:
		return "", fmt.Errorf("unsupported proxy kind %q (expected uups or transparent)", s)
	}
}

// ProxyDeployment is the outcome of a deploy or upgrade call.
type ProxyDeployment struct {
	Proxy          common.Address
	Implementation common.Address
	TxHash         common.Hash
}

// CallResult is the outcome of a mined contract transaction.
type CallResult struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	// Events holds the names of decoded events emitted by the transaction
	Events []string
}
