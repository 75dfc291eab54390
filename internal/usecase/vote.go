package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// Vote coordinates the two-phase vote flow: advisory duplicate check, the
// binding chain vote, then the replica projection (vote row plus exactly
// one counter increment).
type Vote struct {
	chain    ChainClient
	replica  ReplicaStore
	guard    *VoteGuard
	resolver *ProposalResolver
	lister   *ListProposals
	retry    RetryPolicy
	progress ProgressSink
	log      *slog.Logger
}

// NewVote creates a new vote use case
func NewVote(
	chain ChainClient,
	replica ReplicaStore,
	guard *VoteGuard,
	resolver *ProposalResolver,
	lister *ListProposals,
	progress ProgressSink,
	log *slog.Logger,
) *Vote {
	return &Vote{
		chain:    chain,
		replica:  replica,
		guard:    guard,
		resolver: resolver,
		lister:   lister,
		retry:    DefaultReplicaRetry(),
		progress: progress,
		log:      log,
	}
}

// VoteParams contains parameters for casting a vote
type VoteParams struct {
	// ProposalRef is a proposal ID or a fuzzy title match
	ProposalRef string
	Support     bool
}

// VoteResult contains the resolved outcome and a refreshed snapshot.
type VoteResult struct {
	Action    domain.ActionResult
	Proposal  *models.Proposal
	Proposals *ProposalListResult
}

// Run executes the two-phase vote flow.
func (uc *Vote) Run(ctx context.Context, params VoteParams) (*VoteResult, error) {
	proposal, err := uc.resolver.Resolve(ctx, params.ProposalRef)
	if err != nil {
		return &VoteResult{Action: domain.ValidationFailed(err)}, nil
	}
	result := &VoteResult{Proposal: proposal}

	// Local fast path; the chain client re-checks against chain time
	// before broadcasting.
	if proposal.Ended(time.Now()) {
		result.Action = domain.ValidationFailed(domain.ErrVotingClosed)
		return result, nil
	}

	voter := uc.chain.WalletAddress()

	// Advisory duplicate check. A pass does not exempt the chain call
	// from failing with "already voted"; an unavailable replica means we
	// proceed and let the contract be the backstop.
	voted, gerr := uc.guard.HasVoted(ctx, proposal.ID, voter)
	switch {
	case gerr != nil:
		uc.log.Warn("duplicate-vote guard unavailable, relying on chain-side rejection",
			"proposal", proposal.ID, "err", gerr)
	case voted:
		result.Action = domain.ValidationFailed(domain.ErrAlreadyVoted)
		return result, nil
	}

	// Phase 1: chain commit
	uc.progress.Start("Casting vote on chain")
	receipt, err := uc.chain.Vote(ctx, proposal.ID, params.Support)
	uc.progress.Stop()
	if err != nil {
		result.Action = domain.ChainFailed(err)
		return result, nil
	}

	// Phase 2: replica projection, idempotent per (proposal, voter)
	err = uc.recordVote(ctx, proposal.ID, voter, params.Support)
	if err != nil {
		uc.log.Warn("vote recorded on-chain but replica update failed",
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

// recordVote projects one confirmed chain vote into the replica. Replaying
// it for the same vote is safe: an existing row short-circuits before any
// insert or increment, so the counter never moves beyond +1 total.
func (uc *Vote) recordVote(ctx context.Context, proposalID uint64, voter string, support bool) error {
	recorded, err := uc.replica.HasVoted(ctx, proposalID, voter)
	if err == nil && recorded {
		return nil
	}

	err = uc.retry.Do(ctx, func() error {
		return uc.replica.InsertVote(ctx, &models.Vote{
			ProposalID:   proposalID,
			VoterAddress: voter,
			Support:      support,
		})
	})
	if errors.Is(err, domain.ErrReplicaRejected) {
		// Unique index got there first (concurrent session); the vote is
		// already projected, don't double-count it.
		return nil
	}
	if err != nil {
		return err
	}

	increment := uc.replica.IncrementYesVotes
	if !support {
		increment = uc.replica.IncrementNoVotes
	}
	return uc.retry.Do(ctx, func() error {
		return increment(ctx, proposalID)
	})
}
