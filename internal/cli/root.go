package cli

import (
	"context"
	"fmt"

	"github.com/polymorpher/band-oracle-reader/internal/app"
	"github.com/polymorpher/band-oracle-reader/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bandreader",
		Short: "Deploy the BandOracleReader price feed adapter",
		Long: `bandreader deploys BandOracleReader, a contract that reads the ETH/USD
price from the Band Protocol reference oracle, and prints its address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network name from bandreader.toml or an RPC URL")
	rootCmd.PersistentFlags().String("sender", "", "Sender from bandreader.toml [senders] (defaults to 'default')")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable the progress spinner")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this long (0 waits indefinitely)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	planCmd := NewPlanCmd()
	planCmd.GroupID = "main"
	rootCmd.AddCommand(planCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// globalFlagKeys maps persistent flags to their viper keys
var globalFlagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"network":         "network",
	"sender":          "sender",
	"timeout":         "timeout",
}

// bindGlobalFlags copies flags that were set on the command line onto viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := globalFlagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// runContext returns the command context bounded by the configured timeout.
// Callers defer the cancel func so it runs on every return path.
func runContext(cmd *cobra.Command, app *app.App) (context.Context, context.CancelFunc) {
	if app.Config.Timeout > 0 {
		return context.WithTimeout(cmd.Context(), app.Config.Timeout)
	}
	return context.WithCancel(cmd.Context())
}
