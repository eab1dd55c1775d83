package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Context settings
	Network *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	AssumeYes      bool // Skip confirmation prompts
	Timeout        time.Duration

	// Signer private key (hex), usually from PRIVATE_KEY
	PrivateKey string

	// Resolved configurations
	Project *ProjectConfig
}

// Network represents a resolved network
type Network struct {
	Name      string            `json:"name"`
	RPCURL    string            `json:"rpcUrl"`
	ChainID   uint64            `json:"chainId,omitempty"` // 0 when not pinned in config
	Confirm   bool              `json:"confirm,omitempty"`
	Addresses map[string]string `json:"addresses,omitempty"`
}
