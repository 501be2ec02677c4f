package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
)

// BandOracleReader deployment literals. The reader is always deployed against the
// same Band reference oracle and pair, with no update fee.
const (
	BandOracleReaderContract = "BandOracleReader"
	BandOracleAddress        = "0xA55d9ef16Af921b70Fed1421C1D298Ca5A3a18F1"
	BandBaseSymbol           = "ETH"
	BandQuoteSymbol          = "USD"
	BandUpdateFee            = 0
)

// DeploymentRequest describes a single contract-creation call
type DeploymentRequest struct {
	ContractName    string
	ConstructorArgs []any
}

// DeploymentResult is what the deploy capability reports once the creation tx is mined
type DeploymentResult struct {
	Address     string
	TxHash      string
	BlockNumber uint64
	ChainID     uint64
	Deployer    string
}

// Artifact is a compiled contract loaded from disk
type Artifact struct {
	Name     string
	Path     string
	ABI      abi.ABI
	Bytecode []byte
}

// DeploymentPlan is everything needed to broadcast a deployment, resolved but not sent
type DeploymentPlan struct {
	Artifact        *Artifact
	Network         *config.Network
	Sender          string
	From            string
	ConstructorArgs []any  // coerced to ABI Go types
	EncodedArgs     []byte // ABI-encoded constructor arguments
}
