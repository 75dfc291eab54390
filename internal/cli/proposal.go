package cli

import (
	"github.com/spf13/cobra"
)

// NewProposalCmd creates the proposal command group
func NewProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "proposal",
		Aliases: []string{"proposals", "p"},
		Short:   "Manage governance proposals",
		Long:    "Create, vote on, execute and list DAO governance proposals",
	}

	cmd.AddCommand(NewProposalListCmd())
	cmd.AddCommand(NewProposalCreateCmd())
	cmd.AddCommand(NewProposalVoteCmd())
	cmd.AddCommand(NewProposalExecuteCmd())

	return cmd
}
