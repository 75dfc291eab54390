package usecase

import "context"

// VoteGuard is the best-effort duplicate-vote pre-check. It is advisory
// only: two concurrent first-time votes from the same address can both pass
// before either replica row lands. The contract's own "already voted"
// revert is the actual enforcement point.
type VoteGuard struct {
	replica ReplicaStore
	retry   RetryPolicy
}

// NewVoteGuard creates a new duplicate-vote guard
func NewVoteGuard(replica ReplicaStore) *VoteGuard {
	return &VoteGuard{
		replica: replica,
		retry:   DefaultReplicaRetry(),
	}
}

// HasVoted reports whether a vote row exists for (proposal, voter). Zero
// rows is false, not an error. A failing query propagates
// domain.ErrReplicaUnavailable; the caller proceeds with reduced confidence
// and relies on chain-side duplicate rejection.
func (g *VoteGuard) HasVoted(ctx context.Context, proposalID uint64, voter string) (bool, error) {
	var voted bool
	err := g.retry.Do(ctx, func() error {
		var err error
		voted, err = g.replica.HasVoted(ctx, proposalID, voter)
		return err
	})
	if err != nil {
		return false, err
	}
	return voted, nil
}
