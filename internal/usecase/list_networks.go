package usecase

import (
	"context"

	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks     []NetworkStatus
	ConfigSource string // empty when no bandreader.toml was found
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name     string
	ChainID  uint64
	Explorer string
	Error    error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.Networks()

	// Check each network's status
	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.Resolve(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = info.ChainID
			status.Explorer = info.ExplorerURL
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks:     networks,
		ConfigSource: uc.config.ConfigSource,
	}, nil
}
