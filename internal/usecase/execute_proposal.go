package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// ExecuteProposal coordinates the two-phase execution flow. The local gate
// mirrors the contract's own execution guard (ended, passing, not executed)
// so transactions guaranteed to revert are never submitted.
type ExecuteProposal struct {
	chain    ChainClient
	replica  ReplicaStore
	resolver *ProposalResolver
	lister   *ListProposals
	retry    RetryPolicy
	progress ProgressSink
	log      *slog.Logger
}

// NewExecuteProposal creates a new execute proposal use case
func NewExecuteProposal(
	chain ChainClient,
	replica ReplicaStore,
	resolver *ProposalResolver,
	lister *ListProposals,
	progress ProgressSink,
	log *slog.Logger,
) *ExecuteProposal {
	return &ExecuteProposal{
		chain:    chain,
		replica:  replica,
		resolver: resolver,
		lister:   lister,
		retry:    DefaultReplicaRetry(),
		progress: progress,
		log:      log,
	}
}

// ExecuteProposalParams contains parameters for executing a proposal
type ExecuteProposalParams struct {
	// ProposalRef is a proposal ID or a fuzzy title match
	ProposalRef string
}

// ExecuteProposalResult contains the resolved outcome and a refreshed snapshot.
type ExecuteProposalResult struct {
	Action    domain.ActionResult
	Proposal  *models.Proposal
	Proposals *ProposalListResult
}

// Run executes the two-phase execution flow.
func (uc *ExecuteProposal) Run(ctx context.Context, params ExecuteProposalParams) (*ExecuteProposalResult, error) {
	proposal, err := uc.resolver.Resolve(ctx, params.ProposalRef)
	if err != nil {
		return &ExecuteProposalResult{Action: domain.ValidationFailed(err)}, nil
	}
	result := &ExecuteProposalResult{Proposal: proposal}

	// Execution gate: now > end_time AND yes > no AND not executed
	now := time.Now()
	switch {
	case proposal.Status == models.ProposalStatusExecuted:
		result.Action = domain.ValidationFailed(domain.ErrAlreadyExecuted)
		return result, nil
	case !proposal.Ended(now):
		result.Action = domain.ValidationFailed(domain.ErrVotingNotEnded)
		return result, nil
	case !proposal.Passing():
		result.Action = domain.ValidationFailed(domain.ErrProposalNotPassing)
		return result, nil
	}

	// Phase 1: chain commit
	uc.progress.Start("Executing proposal on chain")
	receipt, err := uc.chain.ExecuteProposal(ctx, proposal.ID)
	uc.progress.Stop()
	if err != nil {
		result.Action = domain.ChainFailed(err)
		return result, nil
	}

	// Phase 2: flip the replica status; idempotent per (proposal, status)
	err = uc.retry.Do(ctx, func() error {
		return uc.replica.UpdateProposalStatus(ctx, proposal.ID, models.ProposalStatusExecuted)
	})
	if err != nil {
		uc.log.Warn("proposal executed on-chain but replica status update failed",
			"proposal", proposal.ID, "err", err)
		result.Action = domain.ReplicaDegraded(proposal.ID, receipt.TxHash, err)
	} else {
		result.Action = domain.Succeeded(proposal.ID, receipt.TxHash)
	}

	if list, lerr := uc.lister.Run(ctx); lerr == nil {
		result.Proposals = list
	} else {
		uc.log.Warn("post-action refresh failed", "err", lerr)
	}

	return result, nil
}
