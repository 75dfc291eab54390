package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// NewProposalExecuteCmd creates the proposal execute command
func NewProposalExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute <proposal>",
		Short: "Execute a passed proposal",
		Long: `Execute a proposal whose voting period has ended with more yes than
no votes. Anyone can execute; execution is recorded on the contract.`,
		Example: `  # Execute proposal 3
  sdao proposal execute 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !app.Config.NonInteractive {
				if !confirmPrompt(fmt.Sprintf("Execute proposal %q", args[0])) {
					return fmt.Errorf("aborted")
				}
			}

			params := usecase.ExecuteProposalParams{ProposalRef: args[0]}

			result, err := app.ExecuteProposal.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewActionRenderer(cmd.OutOrStdout())
			return renderer.RenderExecute(result)
		},
	}

	return cmd
}
