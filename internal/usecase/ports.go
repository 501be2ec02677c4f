package usecase

import (
	"context"

	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
)

// ContractDeployer submits a contract-creation transaction and blocks until it is mined
type ContractDeployer interface {
	Deploy(ctx context.Context, contractName string, args []any) (*domain.DeploymentResult, error)
}

// DeploymentPreparer resolves everything a deployment needs without broadcasting it
type DeploymentPreparer interface {
	Prepare(ctx context.Context, contractName string, args []any) (*domain.DeploymentPlan, error)
}

// NetworkResolver resolves configured networks
type NetworkResolver interface {
	Networks() []string
	Resolve(ctx context.Context, networkName string) (*config.Network, error)
}

// Progress tracking interfaces

// Deployment stages reported through ProgressSink
const (
	StageLoading      = "loading"
	StageConnecting   = "connecting"
	StageBroadcasting = "broadcasting"
	StageWaiting      = "waiting"
	StageCompleted    = "completed"
	StageFailed       = "failed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
}
