package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/polymorpher/band-oracle-reader/internal/domain"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContractDeployer is a mock implementation of ContractDeployer
type MockContractDeployer struct {
	mock.Mock
}

func (m *MockContractDeployer) Deploy(ctx context.Context, contractName string, args []any) (*domain.DeploymentResult, error) {
	ret := m.Called(ctx, contractName, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.DeploymentResult), ret.Error(1)
}

// MockDeploymentPreparer is a mock implementation of DeploymentPreparer
type MockDeploymentPreparer struct {
	mock.Mock
}

func (m *MockDeploymentPreparer) Prepare(ctx context.Context, contractName string, args []any) (*domain.DeploymentPlan, error) {
	ret := m.Called(ctx, contractName, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.DeploymentPlan), ret.Error(1)
}

var expectedArgs = []any{"0xA55d9ef16Af921b70Fed1421C1D298Ca5A3a18F1", "ETH", "USD", 0}

func TestDeployOracleReader(t *testing.T) {
	ctx := context.Background()

	t.Run("deploys with fixed constructor arguments", func(t *testing.T) {
		deployer := new(MockContractDeployer)
		deployer.On("Deploy", ctx, "BandOracleReader", expectedArgs).
			Return(&domain.DeploymentResult{Address: "0xABC"}, nil).Once()

		uc := usecase.NewDeployOracleReader(deployer)
		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, "BandOracleReader", result.ContractName)
		assert.Equal(t, "0xABC", result.Deployment.Address)
		assert.Equal(t, "ETH", result.Base)
		assert.Equal(t, "USD", result.Quote)
		deployer.AssertExpectations(t)
		deployer.AssertNumberOfCalls(t, "Deploy", 1)
	})

	t.Run("returns deployer error unchanged and does not retry", func(t *testing.T) {
		deployErr := errors.New("insufficient funds")
		deployer := new(MockContractDeployer)
		deployer.On("Deploy", ctx, "BandOracleReader", expectedArgs).Return(nil, deployErr)

		uc := usecase.NewDeployOracleReader(deployer)
		result, err := uc.Run(ctx)

		assert.Nil(t, result)
		assert.Same(t, deployErr, err)
		deployer.AssertNumberOfCalls(t, "Deploy", 1)
	})

	t.Run("repeated runs issue independent identical calls", func(t *testing.T) {
		deployer := new(MockContractDeployer)
		deployer.On("Deploy", ctx, "BandOracleReader", expectedArgs).
			Return(&domain.DeploymentResult{Address: "0x1"}, nil).Once()
		deployer.On("Deploy", ctx, "BandOracleReader", expectedArgs).
			Return(&domain.DeploymentResult{Address: "0x2"}, nil).Once()

		uc := usecase.NewDeployOracleReader(deployer)
		first, err := uc.Run(ctx)
		require.NoError(t, err)
		second, err := uc.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, "0x1", first.Deployment.Address)
		assert.Equal(t, "0x2", second.Deployment.Address)
		deployer.AssertNumberOfCalls(t, "Deploy", 2)
		assert.Equal(t, deployer.Calls[0].Arguments, deployer.Calls[1].Arguments)
	})
}

func TestOracleReaderRequest(t *testing.T) {
	req := usecase.OracleReaderRequest()
	assert.Equal(t, "BandOracleReader", req.ContractName)
	assert.Equal(t, expectedArgs, req.ConstructorArgs)

	// Each call returns a fresh slice
	req.ConstructorArgs[1] = "BTC"
	assert.Equal(t, "ETH", usecase.OracleReaderRequest().ConstructorArgs[1])
}

func TestPlanDeployment(t *testing.T) {
	ctx := context.Background()
	plan := &domain.DeploymentPlan{Sender: "default"}

	preparer := new(MockDeploymentPreparer)
	preparer.On("Prepare", ctx, "BandOracleReader", expectedArgs).Return(plan, nil)

	got, err := usecase.NewPlanDeployment(preparer).Run(ctx)

	require.NoError(t, err)
	assert.Same(t, plan, got)
	preparer.AssertExpectations(t)
}
