package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillshare-dao/sdao-cli/internal/cli/render"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// NewProposalVoteCmd creates the proposal vote command
func NewProposalVoteCmd() *cobra.Command {
	var (
		yes bool
		no  bool
	)

	cmd := &cobra.Command{
		Use:   "vote <proposal>",
		Short: "Vote on a proposal",
		Long: `Cast a vote on an active proposal.

The proposal can be referenced by its numeric ID or by a fuzzy title
match. Each wallet can vote once per proposal; the contract rejects
repeat votes.`,
		Example: `  # Vote yes on proposal 3
  sdao proposal vote 3 --yes

  # Vote no by title
  sdao proposal vote "bootcamp" --no`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if yes == no {
				return fmt.Errorf("specify exactly one of --yes or --no")
			}

			if !app.Config.NonInteractive {
				choice := "yes"
				if no {
					choice = "no"
				}
				if !confirmPrompt(fmt.Sprintf("Cast a %s vote on %q", choice, args[0])) {
					return fmt.Errorf("aborted")
				}
			}

			params := usecase.VoteParams{
				ProposalRef: args[0],
				Support:     yes,
			}

			result, err := app.Vote.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewActionRenderer(cmd.OutOrStdout())
			return renderer.RenderVote(result)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Vote in favor")
	cmd.Flags().BoolVar(&no, "no", false, "Vote against")

	return cmd
}
