package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	abicoerce "github.com/polymorpher/band-oracle-reader/internal/adapters/abi"
	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
)

// Backend is the subset of an RPC client needed to deploy and confirm a contract
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// ArtifactLoader loads compiled contracts by name
type ArtifactLoader interface {
	Load(name string) (*domain.Artifact, error)
}

// SignerProvider builds signers for configured senders
type SignerProvider interface {
	Address(name string) (common.Address, error)
	Transactor(ctx context.Context, name string, chainID *big.Int) (*bind.TransactOpts, error)
}

// DialFunc opens a Backend for an RPC URL. Deploy owns the returned backend and
// closes it when it implements Close.
type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

// DialEthClient dials a JSON-RPC endpoint with ethclient
func DialEthClient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Deployer implements ContractDeployer and DeploymentPreparer on top of go-ethereum
type Deployer struct {
	loader   ArtifactLoader
	resolver usecase.NetworkResolver
	senders  SignerProvider
	sink     usecase.ProgressSink
	log      *slog.Logger
	network  string
	sender   string
	dial     DialFunc
}

// NewDeployer creates a new go-ethereum backed deployer
func NewDeployer(
	loader ArtifactLoader,
	resolver usecase.NetworkResolver,
	senders SignerProvider,
	sink usecase.ProgressSink,
	log *slog.Logger,
	cfg *config.RuntimeConfig,
) *Deployer {
	return &Deployer{
		loader:   loader,
		resolver: resolver,
		senders:  senders,
		sink:     sink,
		log:      log.With("component", "Deployer"),
		network:  cfg.Network,
		sender:   cfg.Sender,
		dial:     DialEthClient,
	}
}

// WithDial replaces the function used to open RPC connections
func (d *Deployer) WithDial(dial DialFunc) *Deployer {
	d.dial = dial
	return d
}

// Prepare loads the artifact, encodes the constructor arguments and resolves the
// network and sender. Nothing is sent.
func (d *Deployer) Prepare(ctx context.Context, contractName string, args []any) (*domain.DeploymentPlan, error) {
	d.sink.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageLoading,
		Message: fmt.Sprintf("Loading %s", contractName),
		Spinner: true,
	})

	artifact, err := d.loader.Load(contractName)
	if err != nil {
		return nil, err
	}

	coerced, err := abicoerce.CoerceConstructorArgs(contractName, artifact.ABI, args)
	if err != nil {
		return nil, err
	}

	encoded, err := artifact.ABI.Pack("", coerced...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s constructor arguments: %w", contractName, err)
	}

	network, err := d.resolver.Resolve(ctx, d.network)
	if err != nil {
		return nil, err
	}

	from, err := d.senders.Address(d.sender)
	if err != nil {
		return nil, err
	}

	d.log.Debug("prepared deployment",
		"contract", contractName,
		"artifact", artifact.Path,
		"network", network.Name,
		"chainId", network.ChainID,
		"from", from.Hex(),
	)

	return &domain.DeploymentPlan{
		Artifact:        artifact,
		Network:         network,
		Sender:          d.sender,
		From:            from.Hex(),
		ConstructorArgs: coerced,
		EncodedArgs:     encoded,
	}, nil
}

// Deploy sends the creation transaction and waits for it to be mined
func (d *Deployer) Deploy(ctx context.Context, contractName string, args []any) (_ *domain.DeploymentResult, err error) {
	defer func() {
		if err != nil {
			d.sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageFailed, Message: err.Error()})
		}
	}()

	plan, err := d.Prepare(ctx, contractName, args)
	if err != nil {
		return nil, err
	}

	d.sink.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageConnecting,
		Message: fmt.Sprintf("Connecting to %s", plan.Network.Name),
		Spinner: true,
	})

	client, err := d.dial(ctx, plan.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", plan.Network.Name, err)
	}
	if closer, ok := client.(interface{ Close() }); ok {
		defer closer.Close()
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if plan.Network.ChainID != 0 && chainID.Uint64() != plan.Network.ChainID {
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, plan.Network.ChainID, chainID.Uint64())
	}

	opts, err := d.senders.Transactor(ctx, plan.Sender, chainID)
	if err != nil {
		return nil, err
	}

	d.sink.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageBroadcasting,
		Message: fmt.Sprintf("Broadcasting %s", contractName),
		Spinner: true,
	})

	_, tx, _, err := bind.DeployContract(opts, plan.Artifact.ABI, plan.Artifact.Bytecode, client, plan.ConstructorArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", contractName, err)
	}
	d.log.Debug("sent creation transaction", "tx", tx.Hash().Hex(), "nonce", tx.Nonce())

	d.sink.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageWaiting,
		Message: fmt.Sprintf("Waiting for %s", tx.Hash().Hex()),
		Spinner: true,
	})

	address, err := bind.WaitDeployed(ctx, client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s deployment: %w", contractName, err)
	}

	receipt, err := client.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt for %s: %w", tx.Hash().Hex(), err)
	}

	d.sink.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageCompleted,
		Message: fmt.Sprintf("Deployed %s", contractName),
	})
	d.sink.Info(txSummary(plan.Network, tx.Hash(), receipt.BlockNumber.Uint64()))

	return &domain.DeploymentResult{
		Address:     address.Hex(),
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		ChainID:     chainID.Uint64(),
		Deployer:    plan.From,
	}, nil
}

// txSummary describes where the creation tx landed, with an explorer link when one is known
func txSummary(network *config.Network, hash common.Hash, block uint64) string {
	summary := fmt.Sprintf("tx %s mined in block %d on %s", hash.Hex(), block, network.Name)
	if network.ExplorerURL != "" {
		summary += fmt.Sprintf(" (%s/tx/%s)", strings.TrimRight(network.ExplorerURL, "/"), hash.Hex())
	}
	return summary
}
