package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/lmittmann/w3"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// Client is a lazily dialed connection to the selected network. The same RPC
// connection backs an ethclient for transactions and a w3 client for calls.
type Client struct {
	network *config.Network
	log     *slog.Logger

	mu      sync.Mutex
	eth     *ethclient.Client
	w3      *w3.Client
	chainID *big.Int
}

// NewClient creates a new client for the configured network. Nothing is dialed yet.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		network: cfg.Network,
		log:     log.With("component", "Client"),
	}
}

// connect dials the RPC endpoint once and verifies the chain id
func (c *Client) connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.eth != nil {
		return nil
	}
	if c.network == nil {
		return domain.ErrNoNetwork
	}

	c.log.Debug("dialing rpc", "network", c.network.Name)
	rpcClient, err := rpc.DialContext(ctx, c.network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	eth := ethclient.NewClient(rpcClient)
	chainID, err := eth.ChainID(ctx)
	if err != nil {
		rpcClient.Close()
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	// A configured chain id of 0 accepts whatever the node reports
	if c.network.ChainID != 0 && chainID.Uint64() != c.network.ChainID {
		rpcClient.Close()
		return fmt.Errorf("network '%s' expects chain ID %d, RPC reports %s: %w",
			c.network.Name, c.network.ChainID, chainID, domain.ErrNetworkMismatch)
	}

	c.eth = eth
	c.w3 = w3.NewClient(rpcClient)
	c.chainID = chainID
	return nil
}

// Eth returns the connected ethclient
func (c *Client) Eth(ctx context.Context) (*ethclient.Client, error) {
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	return c.eth, nil
}

// W3 returns the connected w3 client
func (c *Client) W3(ctx context.Context) (*w3.Client, error) {
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	return c.w3, nil
}

// ChainID returns the chain id reported by the node
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	return new(big.Int).Set(c.chainID), nil
}

// NetworkName returns the configured network name
func (c *Client) NetworkName() string {
	if c.network == nil {
		return ""
	}
	return c.network.Name
}

// BlockNumber returns the latest block number
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	eth, err := c.Eth(ctx)
	if err != nil {
		return 0, err
	}
	return eth.BlockNumber(ctx)
}

// BalanceAt returns the latest balance of account in wei
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	eth, err := c.Eth(ctx)
	if err != nil {
		return nil, err
	}
	return eth.BalanceAt(ctx, account, nil)
}

// Close releases the connection if one was made
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.eth != nil {
		c.eth.Close()
	}
}

var (
	_ usecase.NetworkIdentity = (*Client)(nil)
	_ usecase.ChainInspector  = (*Client)(nil)
)
