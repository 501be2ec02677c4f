package usecase

import (
	"context"

	"github.com/polymorpher/band-oracle-reader/internal/domain"
)

// DeployOracleReaderResult contains the result of deploying the BandOracleReader
type DeployOracleReaderResult struct {
	ContractName string
	Deployment   *domain.DeploymentResult
	Base         string
	Quote        string
}

// DeployOracleReader deploys BandOracleReader with its fixed constructor arguments
type DeployOracleReader struct {
	deployer ContractDeployer
}

// NewDeployOracleReader creates a new DeployOracleReader use case
func NewDeployOracleReader(deployer ContractDeployer) *DeployOracleReader {
	return &DeployOracleReader{
		deployer: deployer,
	}
}

// OracleReaderRequest builds the deployment request. Argument order matches the
// BandOracleReader constructor: (oracle, base, quote, updateFee).
func OracleReaderRequest() domain.DeploymentRequest {
	return domain.DeploymentRequest{
		ContractName: domain.BandOracleReaderContract,
		ConstructorArgs: []any{
			domain.BandOracleAddress,
			domain.BandBaseSymbol,
			domain.BandQuoteSymbol,
			domain.BandUpdateFee,
		},
	}
}

// Run executes the use case. The deployer is called exactly once and its error,
// if any, is returned unchanged.
func (uc *DeployOracleReader) Run(ctx context.Context) (*DeployOracleReaderResult, error) {
	req := OracleReaderRequest()

	deployment, err := uc.deployer.Deploy(ctx, req.ContractName, req.ConstructorArgs)
	if err != nil {
		return nil, err
	}

	return &DeployOracleReaderResult{
		ContractName: req.ContractName,
		Deployment:   deployment,
		Base:         domain.BandBaseSymbol,
		Quote:        domain.BandQuoteSymbol,
	}, nil
}
