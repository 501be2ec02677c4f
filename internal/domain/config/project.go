package config

// ProjectConfig represents the full bandreader.toml configuration
type ProjectConfig struct {
	Artifacts      string                     `toml:"artifacts,omitempty"`
	DefaultNetwork string                     `toml:"default_network,omitempty"`
	RpcEndpoints   map[string]string          `toml:"rpc_endpoints"`
	ChainIDs       map[string]uint64          `toml:"chain_ids,omitempty"`
	Etherscan      map[string]EtherscanConfig `toml:"etherscan,omitempty"`
	Senders        map[string]SenderConfig    `toml:"senders,omitempty"`
}

// EtherscanConfig represents block explorer configuration for a network
type EtherscanConfig struct {
	Key string `toml:"key,omitempty"` // API key, unused by deploy but kept for parity with foundry.toml
	URL string `toml:"url,omitempty"`
}

type SenderType string

var (
	SenderTypePrivateKey SenderType = "private_key"
)

// SenderConfig represents a sender configuration
type SenderConfig struct {
	Type       SenderType `toml:"type"`
	PrivateKey string     `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}

// DefaultArtifactsDir is used when bandreader.toml doesn't set artifacts
const DefaultArtifactsDir = "artifacts"

// ArtifactsDir returns the configured artifacts directory or the default
func (c *ProjectConfig) ArtifactsDir() string {
	if c == nil || c.Artifacts == "" {
		return DefaultArtifactsDir
	}
	return c.Artifacts
}
