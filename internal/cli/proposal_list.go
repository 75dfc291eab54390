package cli

import (
	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
)

// NewProposalListCmd creates the proposal list command
func NewProposalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals from the replica",
		Long: `List all governance proposals from the replica store.

Tallies come from the replica and can briefly trail the chain after a
degraded write; the chain state is always authoritative.`,
		Example: `  # List all proposals
  sdao proposal list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProposals.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
