package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// NewProposalCreateCmd creates the proposal create command
func NewProposalCreateCmd() *cobra.Command {
	var (
		description  string
		durationDays int
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new governance proposal",
		Long: fmt.Sprintf(`Create a new governance proposal on the DAO contract.

The voting period must be between %d and %d days. Creation charges the
contract's fixed proposal fee from the connected wallet.`,
			domain.MinProposalDurationDays, domain.MaxProposalDurationDays),
		Example: `  # Create a proposal with a 7 day voting period
  sdao proposal create "Fund a Solidity bootcamp" --description "Details..." --duration 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !app.Config.NonInteractive {
				label := fmt.Sprintf("Create proposal %q and pay the proposal fee", args[0])
				if !confirmPrompt(label) {
					return fmt.Errorf("aborted")
				}
			}

			params := usecase.CreateProposalParams{
				Title:        args[0],
				Description:  description,
				DurationDays: durationDays,
			}

			result, err := app.CreateProposal.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewActionRenderer(cmd.OutOrStdout())
			return renderer.RenderCreate(result)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Proposal description")
	cmd.Flags().IntVar(&durationDays, "duration", 7, "Voting period in days")

	return cmd
}
