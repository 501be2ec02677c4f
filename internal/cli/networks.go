package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/polymorpher/band-oracle-reader/internal/cli/render"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks from bandreader.toml",
		Long: `List all networks configured in the [rpc_endpoints] section of bandreader.toml.

This command shows all available networks and attempts to fetch their chain IDs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(cmd, app)
			defer cancel()

			result, err := app.ListNetworks.Run(ctx, usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			color := cmd.OutOrStdout() == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), color)
			return renderer.RenderNetworksList(result)
		},
	}

	return cmd
}
