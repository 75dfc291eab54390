package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// CreateProposal coordinates the two-phase proposal creation: the binding
// chain commit first, then the best-effort replica insert. A failed replica
// insert after a confirmed chain write degrades the result instead of
// failing it; the proposal exists on-chain whether the index noticed or not.
type CreateProposal struct {
	chain    ChainClient
	replica  ReplicaStore
	lister   *ListProposals
	retry    RetryPolicy
	progress ProgressSink
	log      *slog.Logger
}

// NewCreateProposal creates a new create proposal use case
func NewCreateProposal(
	chain ChainClient,
	replica ReplicaStore,
	lister *ListProposals,
	progress ProgressSink,
	log *slog.Logger,
) *CreateProposal {
	return &CreateProposal{
		chain:    chain,
		replica:  replica,
		lister:   lister,
		retry:    DefaultReplicaRetry(),
		progress: progress,
		log:      log,
	}
}

// CreateProposalParams contains parameters for creating a proposal
type CreateProposalParams struct {
	Title        string
	Description  string
	DurationDays int
}

// CreateProposalResult contains the resolved outcome and a refreshed
// proposal snapshot for rendering.
type CreateProposalResult struct {
	Action    domain.ActionResult
	Proposals *ProposalListResult
}

// Run executes the two-phase creation flow.
func (uc *CreateProposal) Run(ctx context.Context, params CreateProposalParams) (*CreateProposalResult, error) {
	// Pre-check: reject obviously invalid input before any chain call
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return &CreateProposalResult{Action: domain.ValidationFailed(domain.ErrEmptyTitle)}, nil
	}
	if params.DurationDays < domain.MinProposalDurationDays || params.DurationDays > domain.MaxProposalDurationDays {
		err := domain.DurationOutOfRangeErr{Days: params.DurationDays}
		return &CreateProposalResult{Action: domain.ValidationFailed(err)}, nil
	}

	// Phase 1: chain commit
	uc.progress.Start("Submitting proposal to chain")
	start := time.Now()
	id, receipt, err := uc.chain.CreateProposal(ctx, title, params.Description, params.DurationDays)
	uc.progress.Stop()
	if err != nil {
		return &CreateProposalResult{Action: domain.ChainFailed(err)}, nil
	}
	uc.log.Debug("proposal confirmed on-chain", "id", id, "tx", receipt.TxHash)

	// Phase 2: replica insert, retried on transient failure only
	record := &models.Proposal{
		ID:             id,
		Title:          title,
		Description:    params.Description,
		CreatorAddress: uc.chain.WalletAddress(),
		StartTime:      start,
		EndTime:        start.AddDate(0, 0, params.DurationDays),
		Status:         models.ProposalStatusActive,
	}
	err = uc.retry.Do(ctx, func() error {
		return uc.replica.InsertProposal(ctx, record)
	})

	result := &CreateProposalResult{}
	if err != nil {
		uc.log.Warn("proposal recorded on-chain but replica insert failed",
			"id", id, "err", err)
		result.Action = domain.ReplicaDegraded(id, receipt.TxHash, err)
	} else {
		result.Action = domain.Succeeded(id, receipt.TxHash)
	}

	// Refresh so the caller renders the replica snapshot, not an
	// optimistic local update
	if list, lerr := uc.lister.Run(ctx); lerr == nil {
		result.Proposals = list
	} else {
		uc.log.Warn("post-action refresh failed", "err", lerr)
	}

	return result, nil
}
