package adapters

import (
	"github.com/google/wire"
	"github.com/polymorpher/band-oracle-reader/internal/adapters/blockchain"
	"github.com/polymorpher/band-oracle-reader/internal/adapters/contracts"
	"github.com/polymorpher/band-oracle-reader/internal/adapters/progress"
	"github.com/polymorpher/band-oracle-reader/internal/config"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
)

// ContractsSet provides artifact loading
var ContractsSet = wire.NewSet(
	contracts.NewArtifactLoader,
	wire.Bind(new(blockchain.ArtifactLoader), new(*contracts.ArtifactLoader)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.NewNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),

	config.NewSendersManager,
	wire.Bind(new(blockchain.SignerProvider), new(*config.SendersManager)),
)

// BlockchainSet provides go-ethereum based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),
	wire.Bind(new(usecase.DeploymentPreparer), new(*blockchain.Deployer)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ContractsSet,
	ConfigSet,
	BlockchainSet,
	ProgressSet,
)
