package cli

import (
	"github.com/polymorpher/band-oracle-reader/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what deploy would send without broadcasting",
		Long: `Resolve the artifact, network and sender for the BandOracleReader deployment
and print the result as YAML. Nothing is signed or broadcast.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()

			plan, err := app.PlanDeployment.Run(ctx)
			if err != nil {
				return err
			}

			return render.NewPlanRenderer(cmd.OutOrStdout()).RenderPlan(plan)
		},
	}

	return cmd
}
