package cli

import (
	"github.com/polymorpher/band-oracle-reader/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy BandOracleReader for ETH/USD",
		Long: `Deploy BandOracleReader against the Band reference oracle at
0xA55d9ef16Af921b70Fed1421C1D298Ca5A3a18F1 with base ETH, quote USD and no update fee.

On success the new address is printed. On failure the error message is printed
instead and the command still exits with status 0. The deployment is attempted once.`,
		Example: `  bandreader deploy --network sepolia
  bandreader deploy -n http://127.0.0.1:8545 --sender deployer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()

			renderer := render.NewDeploymentRenderer(cmd.OutOrStdout())

			result, err := app.DeployOracleReader.Run(ctx)
			if err != nil {
				// Reported, not propagated: a failed deployment is not a failed command
				return renderer.RenderFailure(err)
			}

			return renderer.RenderDeployment(result)
		},
	}

	return cmd
}
