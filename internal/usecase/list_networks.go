package usecase

import (
	"context"

	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	Network *config.Network
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	catalog NetworkCatalog
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(catalog NetworkCatalog) *ListNetworks {
	return &ListNetworks{
		catalog: catalog,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.catalog.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{
			Name: name,
		}

		network, err := uc.catalog.Resolve(name)
		if err != nil {
			status.Error = err
		} else {
			status.Network = network
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
