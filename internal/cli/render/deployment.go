package render

import (
	"fmt"
	"io"

	"github.com/polymorpher/band-oracle-reader/internal/usecase"
)

// DeploymentRenderer writes the outcome of a deployment. The output is plain text
// with no color so scripts can parse it.
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{
		out: out,
	}
}

// RenderDeployment writes "<contract> address: <address> base: <base>"
func (r *DeploymentRenderer) RenderDeployment(result *usecase.DeployOracleReaderResult) error {
	_, err := fmt.Fprintf(r.out, "%s address: %s base: %s\n",
		result.ContractName, result.Deployment.Address, result.Base)
	return err
}

// RenderFailure writes the error message on its own line
func (r *DeploymentRenderer) RenderFailure(deployErr error) error {
	_, err := fmt.Fprintln(r.out, deployErr.Error())
	return err
}
