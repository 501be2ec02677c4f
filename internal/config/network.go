package config

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/samber/lo"
)

// chainIDClient is the part of ethclient the resolver needs
type chainIDClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// NetworkResolver resolves network names to configurations with caching
type NetworkResolver struct {
	projectConfig *config.ProjectConfig
	log           *slog.Logger
	dial          func(ctx context.Context, rpcURL string) (chainIDClient, error)

	mu    sync.Mutex
	cache map[string]uint64 // rpcURL -> chainID
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(cfg *config.RuntimeConfig, log *slog.Logger) *NetworkResolver {
	return &NetworkResolver{
		projectConfig: cfg.ProjectConfig,
		log:           log,
		dial: func(ctx context.Context, rpcURL string) (chainIDClient, error) {
			return ethclient.DialContext(ctx, rpcURL)
		},
		cache: make(map[string]uint64),
	}
}

// Networks returns the configured network names in sorted order
func (r *NetworkResolver) Networks() []string {
	names := lo.Keys(r.projectConfig.RpcEndpoints)
	sort.Strings(names)
	return names
}

// Resolve resolves a network name (or raw RPC URL) to its configuration
func (r *NetworkResolver) Resolve(ctx context.Context, networkName string) (*config.Network, error) {
	if networkName == "" {
		networkName = r.projectConfig.DefaultNetwork
	}
	if networkName == "" {
		return nil, fmt.Errorf("%w: no network selected, pass --network or set default_network in %s",
			domain.ErrNetworkNotConfigured, ProjectFile)
	}

	rpcURL, err := r.rpcURL(networkName)
	if err != nil {
		return nil, err
	}

	chainID, err := r.fetchChainID(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain ID for network %s: %w", networkName, err)
	}

	if pinned, ok := r.projectConfig.ChainIDs[networkName]; ok && pinned != chainID {
		return nil, fmt.Errorf("%w: network %s is configured for chain %d but RPC reports %d",
			domain.ErrChainIDMismatch, networkName, pinned, chainID)
	}

	return &config.Network{
		Name:        networkName,
		RPCURL:      rpcURL,
		ChainID:     chainID,
		ExplorerURL: r.getExplorerURL(networkName, chainID),
	}, nil
}

// rpcURL looks up and expands the endpoint for a network name
func (r *NetworkResolver) rpcURL(networkName string) (string, error) {
	if isRawRPCURL(networkName) {
		return networkName, nil
	}

	raw, exists := r.projectConfig.RpcEndpoints[networkName]
	if !exists {
		return "", fmt.Errorf("%w: network '%s' not found in %s [rpc_endpoints] (add %s = \"${%s}\")",
			domain.ErrNetworkNotConfigured, networkName, ProjectFile, networkName, GenerateEnvVarName(networkName))
	}

	return ExpandValue(fmt.Sprintf("rpc_endpoints.%s", networkName), raw)
}

// fetchChainID asks the RPC endpoint for its chain ID
func (r *NetworkResolver) fetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	r.mu.Lock()
	chainID, cached := r.cache[rpcURL]
	r.mu.Unlock()
	if cached {
		return chainID, nil
	}

	client, err := r.dial(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, err
	}

	r.log.Debug("resolved chain ID", "rpc", rpcURL, "chainId", id.Uint64())

	r.mu.Lock()
	r.cache[rpcURL] = id.Uint64()
	r.mu.Unlock()

	return id.Uint64(), nil
}

// getExplorerURL returns the explorer URL for a network
func (r *NetworkResolver) getExplorerURL(networkName string, chainID uint64) string {
	if etherscan, exists := r.projectConfig.Etherscan[networkName]; exists && etherscan.URL != "" {
		return etherscan.URL
	}

	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 43114:
		return "https://snowtrace.io"
	case 56:
		return "https://bscscan.com"
	case 1666600000:
		return "https://explorer.harmony.one"
	case 1666700000:
		return "https://explorer.testnet.harmony.one"
	default:
		return ""
	}
}

func isRawRPCURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}
