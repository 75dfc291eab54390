package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// ListProposals reads the reconciled proposal list from the replica. The
// list is eventually consistent with chain state: it may lag a confirmed
// vote until the corresponding phase-2 write lands.
type ListProposals struct {
	replica ReplicaStore
	retry   RetryPolicy
}

// NewListProposals creates a new list proposals use case
func NewListProposals(replica ReplicaStore) *ListProposals {
	return &ListProposals{
		replica: replica,
		retry:   DefaultReplicaRetry(),
	}
}

// Run fetches all proposals, newest first, and summarizes their states.
func (uc *ListProposals) Run(ctx context.Context) (*ProposalListResult, error) {
	var proposals []*models.Proposal
	err := uc.retry.Do(ctx, func() error {
		var err error
		proposals, err = uc.replica.ListProposals(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	now := time.Now()
	summary := ProposalSummary{Total: len(proposals)}
	for _, p := range proposals {
		switch {
		case p.Status == models.ProposalStatusExecuted:
			summary.Executed++
		case p.Ended(now):
			// ended but not yet executed; derived, never stored
			summary.Awaiting++
		default:
			summary.Active++
		}
	}

	return &ProposalListResult{Proposals: proposals, Summary: summary}, nil
}
