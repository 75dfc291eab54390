package render

import (
	"fmt"
	"io"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// ActionRenderer renders the outcome of two-phase governance actions.
// Each outcome gets a distinct notification; a degraded result must read
// as a success because the on-chain commit is final.
type ActionRenderer struct {
	out io.Writer
}

// NewActionRenderer creates a new action renderer
func NewActionRenderer(out io.Writer) *ActionRenderer {
	return &ActionRenderer{out: out}
}

// RenderCreate renders the result of creating a proposal
func (r *ActionRenderer) RenderCreate(result *usecase.CreateProposalResult) error {
	r.renderAction(result.Action,
		fmt.Sprintf("Proposal #%d created", result.Action.ProposalID),
		fmt.Sprintf("Proposal #%d created on chain, but the local index missed it", result.Action.ProposalID))
	return r.renderList(result.Proposals)
}

// RenderVote renders the result of casting a vote
func (r *ActionRenderer) RenderVote(result *usecase.VoteResult) error {
	title := ""
	if result.Proposal != nil {
		title = fmt.Sprintf(" on %q", result.Proposal.Title)
	}
	r.renderAction(result.Action,
		"Vote recorded"+title,
		"Vote recorded on chain"+title+", but the local tally missed it")
	return r.renderList(result.Proposals)
}

// RenderExecute renders the result of executing a proposal
func (r *ActionRenderer) RenderExecute(result *usecase.ExecuteProposalResult) error {
	title := ""
	if result.Proposal != nil {
		title = fmt.Sprintf(" %q", result.Proposal.Title)
	}
	r.renderAction(result.Action,
		"Proposal"+title+" executed",
		"Proposal"+title+" executed on chain, but the local index still shows it active")
	return r.renderList(result.Proposals)
}

func (r *ActionRenderer) renderAction(action domain.ActionResult, successMsg, degradedMsg string) {
	switch action.Outcome {
	case domain.OutcomeSuccess:
		fmt.Fprintln(r.out, FormatSuccess(successMsg))
		if action.TxHash != "" {
			fmt.Fprintf(r.out, "   tx: %s\n", action.TxHash)
		}
	case domain.OutcomeReplicaDegraded:
		// The chain commit is binding; never present this as a failure
		fmt.Fprintln(r.out, FormatSuccess(degradedMsg))
		fmt.Fprintln(r.out, FormatWarning("The list below may be briefly out of date; the chain state is authoritative."))
		if action.TxHash != "" {
			fmt.Fprintf(r.out, "   tx: %s\n", action.TxHash)
		}
	case domain.OutcomeValidationFailed:
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("Nothing submitted: %v", action.Err)))
	case domain.OutcomeChainFailed:
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("Transaction failed, nothing was recorded: %v", action.Err)))
	}
}

func (r *ActionRenderer) renderList(result *usecase.ProposalListResult) error {
	if result == nil {
		return nil
	}
	fmt.Fprintln(r.out)
	return NewProposalsRenderer(r.out).Render(result)
}
