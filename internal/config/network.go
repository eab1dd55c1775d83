package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/sahilm/fuzzy"
)

// NetworkResolver resolves network names against zkdeploy.toml
type NetworkResolver struct {
	project *config.ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	return &NetworkResolver{project: project}
}

// Names returns the configured network names, sorted
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.project.Networks))
	for name := range r.project.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	nc, exists := r.project.Networks[networkName]
	if !exists {
		return nil, &domain.UnknownNameError{
			Kind:        "network",
			Name:        networkName,
			Suggestions: suggest(networkName, r.Names()),
			Err:         domain.ErrUnknownNetwork,
		}
	}
	if nc.RPCURL == "" {
		if len(nc.UnsetVars) > 0 {
			return nil, fmt.Errorf("network '%s' has no rpc_url (%s is not set)", networkName, strings.Join(nc.UnsetVars, ", "))
		}
		return nil, fmt.Errorf("network '%s' has no rpc_url (set %s and use rpc_url = \"${%s}\")",
			networkName, GenerateEnvVarName(networkName), GenerateEnvVarName(networkName))
	}

	addresses := make(map[string]string, len(nc.Addresses))
	for k, v := range nc.Addresses {
		addresses[k] = v
	}

	return &config.Network{
		Name:      networkName,
		RPCURL:    nc.RPCURL,
		ChainID:   nc.ChainID,
		Confirm:   nc.Confirm,
		Addresses: addresses,
	}, nil
}

// suggest returns up to three fuzzy matches for name
func suggest(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	var out []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
