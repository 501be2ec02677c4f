package usecase

import (
	"context"

	"github.com/polymorpher/band-oracle-reader/internal/domain"
)

// PlanDeployment resolves the BandOracleReader deployment without broadcasting it
type PlanDeployment struct {
	preparer DeploymentPreparer
}

// NewPlanDeployment creates a new PlanDeployment use case
func NewPlanDeployment(preparer DeploymentPreparer) *PlanDeployment {
	return &PlanDeployment{
		preparer: preparer,
	}
}

// Run executes the use case
func (uc *PlanDeployment) Run(ctx context.Context) (*domain.DeploymentPlan, error) {
	req := OracleReaderRequest()
	return uc.preparer.Prepare(ctx, req.ContractName, req.ConstructorArgs)
}
