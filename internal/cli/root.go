package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillshare-dao/sdao-cli/internal/adapters/progress"
	"github.com/skillshare-dao/sdao-cli/internal/app"
	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
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
		Use:   "sdao",
		Short: "SkillShare DAO course marketplace and governance CLI",
		Long: `sdao is the command line client for the SkillShare DAO: browse and buy
courses, submit new ones, and run governance proposals against the DAO
contract with a local Postgres replica for fast reads.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Set up viper
			v := config.SetupViper(cmd)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if v.GetBool("non_interactive") {
				sink = usecase.NopProgress{}
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("rpc-url", "", "Ethereum JSON-RPC endpoint")
	rootCmd.PersistentFlags().String("dao-address", "", "DAO contract address")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "marketplace",
		Title: "Marketplace Commands",
	})

	proposalCmd := NewProposalCmd()
	proposalCmd.GroupID = "governance"
	rootCmd.AddCommand(proposalCmd)

	courseCmd := NewCourseCmd()
	courseCmd.GroupID = "marketplace"
	rootCmd.AddCommand(courseCmd)

	dashboardCmd := NewDashboardCmd()
	dashboardCmd.GroupID = "marketplace"
	rootCmd.AddCommand(dashboardCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("rpc-url"); f != nil && f.Changed {
		v.Set("rpc_url", f.Value.String())
	}
	if f := cmd.Flag("dao-address"); f != nil && f.Changed {
		v.Set("dao_address", f.Value.String())
	}
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
