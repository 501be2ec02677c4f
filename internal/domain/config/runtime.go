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
	Network string // network name or raw RPC URL, empty if not selected
	Sender  string // key into ProjectConfig.Senders

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration // zero means no timeout

	// Config source tracking
	ConfigSource string // "bandreader.toml" or "" when running without a config file

	// Resolved configuration
	ProjectConfig *ProjectConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId" yaml:"chainId"`
	Name        string `json:"name" yaml:"name"`
	RPCURL      string `json:"rpcUrl" yaml:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
}
