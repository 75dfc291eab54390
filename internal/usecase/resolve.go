package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// ProposalResolver turns a user-supplied reference (numeric ID or part of a
// title) into a replica proposal record.
type ProposalResolver struct {
	replica ReplicaStore
	retry   RetryPolicy
}

// NewProposalResolver creates a new proposal resolver
func NewProposalResolver(replica ReplicaStore) *ProposalResolver {
	return &ProposalResolver{
		replica: replica,
		retry:   DefaultReplicaRetry(),
	}
}

// Resolve looks the reference up by ID first, then falls back to a fuzzy
// title match over the full list. An ambiguous or empty match resolves to
// domain.ErrProposalNotFound.
func (r *ProposalResolver) Resolve(ctx context.Context, ref string) (*models.Proposal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrProposalNotFound
	}

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		var proposal *models.Proposal
		err := r.retry.Do(ctx, func() error {
			var err error
			proposal, err = r.replica.GetProposal(ctx, id)
			return err
		})
		if err != nil {
			return nil, err
		}
		return proposal, nil
	}

	var proposals []*models.Proposal
	err := r.retry.Do(ctx, func() error {
		var err error
		proposals, err = r.replica.ListProposals(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(proposals))
	for i, p := range proposals {
		titles[i] = p.Title
	}
	matches := fuzzy.Find(ref, titles)
	if len(matches) == 0 {
		return nil, domain.ErrProposalNotFound
	}
	return proposals[matches[0].Index], nil
}
