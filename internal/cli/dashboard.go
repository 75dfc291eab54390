package cli

import (
	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
)

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the connected wallet overview",
		Long: `Show the connected wallet's address, ETH balance, voting power and
purchase history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.Dashboard.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewDashboardRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
