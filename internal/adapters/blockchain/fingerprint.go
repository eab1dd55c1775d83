package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lmittmann/w3/module/eth"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// FingerprintReader calls name2() on deployed proxies
type FingerprintReader struct {
	client *Client
}

// NewFingerprintReader creates a new fingerprint reader
func NewFingerprintReader(client *Client) *FingerprintReader {
	return &FingerprintReader{client: client}
}

// ReadFingerprint returns the string reported by name2() on proxy
func (r *FingerprintReader) ReadFingerprint(ctx context.Context, proxy common.Address) (string, error) {
	client, err := r.client.W3(ctx)
	if err != nil {
		return "", err
	}

	var name string
	if err := client.CallCtx(ctx, eth.CallFunc(proxy, funcName2).Returns(&name)); err != nil {
		return "", fmt.Errorf("name2() on %s: %w", proxy.Hex(), err)
	}
	return name, nil
}

var _ usecase.FingerprintReader = (*FingerprintReader)(nil)
