package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// KeySigner signs with the private key from PRIVATE_KEY
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	client  *Client
}

// NewKeySigner parses the configured private key. An empty key yields a
// signer with the zero address that refuses to sign.
func NewKeySigner(cfg *config.RuntimeConfig, client *Client) (*KeySigner, error) {
	s := &KeySigner{client: client}
	if cfg.PrivateKey == "" {
		return s, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRIVATE_KEY: %w", err)
	}
	s.key = key
	s.address = crypto.PubkeyToAddress(key.PublicKey)
	return s, nil
}

// Address returns the signer address
func (s *KeySigner) Address() common.Address {
	return s.address
}

// TransactOpts returns transactor options bound to ctx and the live chain id
func (s *KeySigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if s.key == nil {
		return nil, domain.ErrNoSigner
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

var _ usecase.Signer = (*KeySigner)(nil)
