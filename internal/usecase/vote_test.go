package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

const voter = "0x1111111111111111111111111111111111111111"

func newVote(chain *MockChainClient, replica *MockReplicaStore) *usecase.Vote {
	guard := usecase.NewVoteGuard(replica)
	resolver := usecase.NewProposalResolver(replica)
	lister := usecase.NewListProposals(replica)
	return usecase.NewVote(chain, replica, guard, resolver, lister, usecase.NopProgress{}, testLogger())
}

func activeProposal(id uint64) *models.Proposal {
	now := time.Now()
	return &models.Proposal{
		ID:        id,
		Title:     "Fund a bootcamp",
		StartTime: now.Add(-24 * time.Hour),
		EndTime:   now.Add(24 * time.Hour),
		Status:    models.ProposalStatusActive,
	}
}

func TestVote_Success(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
	replica.On("HasVoted", ctx, uint64(3), voter).Return(false, nil)
	chain.On("WalletAddress").Return(voter)
	chain.On("Vote", ctx, uint64(3), true).Return(&usecase.ChainReceipt{TxHash: "0xvote"}, nil)
	replica.On("InsertVote", ctx, mock.MatchedBy(func(v *models.Vote) bool {
		return v.ProposalID == 3 && v.VoterAddress == voter && v.Support
	})).Return(nil)
	replica.On("IncrementYesVotes", ctx, uint64(3)).Return(nil)
	replica.On("ListProposals", ctx).Return([]*models.Proposal{}, nil)

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Action.Outcome)
	assert.Equal(t, "0xvote", result.Action.TxHash)

	// Exactly one counter moves, and only by one call
	replica.AssertNumberOfCalls(t, "IncrementYesVotes", 1)
	replica.AssertNotCalled(t, "IncrementNoVotes", mock.Anything, mock.Anything)
}

func TestVote_NoVoteIncrementsNoCounter(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
	replica.On("HasVoted", ctx, uint64(3), voter).Return(false, nil)
	chain.On("WalletAddress").Return(voter)
	chain.On("Vote", ctx, uint64(3), false).Return(&usecase.ChainReceipt{TxHash: "0xvote"}, nil)
	replica.On("InsertVote", ctx, mock.Anything).Return(nil)
	replica.On("IncrementNoVotes", ctx, uint64(3)).Return(nil)
	replica.On("ListProposals", ctx).Return([]*models.Proposal{}, nil)

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: false})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Action.Outcome)
	replica.AssertNotCalled(t, "IncrementYesVotes", mock.Anything, mock.Anything)
}

func TestVote_GuardBlocksRepeatVote(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
	replica.On("HasVoted", ctx, uint64(3), voter).Return(true, nil)
	chain.On("WalletAddress").Return(voter)

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeValidationFailed, result.Action.Outcome)
	assert.ErrorIs(t, result.Action.Err, domain.ErrAlreadyVoted)

	// The guard saves the user gas: no transaction may be broadcast
	chain.AssertNotCalled(t, "Vote", mock.Anything, mock.Anything, mock.Anything)
	replica.AssertNotCalled(t, "InsertVote", mock.Anything, mock.Anything)
}

func TestVote_GuardUnavailableFallsThroughToChain(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
	// First HasVoted is the guard read, second is the phase-2 idempotency
	// check; both see the same outage.
	guardErr := errors.Join(domain.ErrReplicaRejected, errors.New("connection refused"))
	replica.On("HasVoted", ctx, uint64(3), voter).Return(false, guardErr)
	chain.On("WalletAddress").Return(voter)
	chain.On("Vote", ctx, uint64(3), true).Return(&usecase.ChainReceipt{TxHash: "0xvote"}, nil)
	replica.On("InsertVote", ctx, mock.Anything).Return(nil)
	replica.On("IncrementYesVotes", ctx, uint64(3)).Return(nil)
	replica.On("ListProposals", ctx).Return([]*models.Proposal{}, nil)

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

	// An unavailable guard degrades to chain-side enforcement, it never
	// blocks the vote
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Action.Outcome)
	chain.AssertCalled(t, "Vote", ctx, uint64(3), true)
}

func TestVote_ClosedProposal(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	ended := activeProposal(3)
	ended.EndTime = time.Now().Add(-time.Hour)
	replica.On("GetProposal", ctx, uint64(3)).Return(ended, nil)

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeValidationFailed, result.Action.Outcome)
	assert.ErrorIs(t, result.Action.Err, domain.ErrVotingClosed)
	chain.AssertNotCalled(t, "Vote", mock.Anything, mock.Anything, mock.Anything)
}

func TestVote_ChainFailureWritesNothing(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
	replica.On("HasVoted", ctx, uint64(3), voter).Return(false, nil)
	chain.On("WalletAddress").Return(voter)
	chain.On("Vote", ctx, uint64(3), true).
		Return(nil, domain.ChainRejectedErr{Op: "vote", Reason: "Already voted"})

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeChainFailed, result.Action.Outcome)
	replica.AssertNotCalled(t, "InsertVote", mock.Anything, mock.Anything)
	replica.AssertNotCalled(t, "IncrementYesVotes", mock.Anything, mock.Anything)
	replica.AssertNotCalled(t, "IncrementNoVotes", mock.Anything, mock.Anything)
}

func TestVote_ProjectionIsIdempotent(t *testing.T) {
	ctx := context.Background()

	t.Run("existing vote row short-circuits before insert", func(t *testing.T) {
		chain := new(MockChainClient)
		replica := new(MockReplicaStore)
		uc := newVote(chain, replica)

		replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
		// Guard read misses, the post-commit check sees the row: the
		// projection landed between the two reads.
		replica.On("HasVoted", ctx, uint64(3), voter).Return(false, nil).Once()
		replica.On("HasVoted", ctx, uint64(3), voter).Return(true, nil).Once()
		chain.On("WalletAddress").Return(voter)
		chain.On("Vote", ctx, uint64(3), true).Return(&usecase.ChainReceipt{TxHash: "0xvote"}, nil)
		replica.On("ListProposals", ctx).Return([]*models.Proposal{}, nil)

		result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSuccess, result.Action.Outcome)

		// Replay never moves the counter a second time
		replica.AssertNotCalled(t, "InsertVote", mock.Anything, mock.Anything)
		replica.AssertNotCalled(t, "IncrementYesVotes", mock.Anything, mock.Anything)
	})

	t.Run("duplicate insert means already projected, counter stays put", func(t *testing.T) {
		chain := new(MockChainClient)
		replica := new(MockReplicaStore)
		uc := newVote(chain, replica)

		replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
		replica.On("HasVoted", ctx, uint64(3), voter).Return(false, nil)
		chain.On("WalletAddress").Return(voter)
		chain.On("Vote", ctx, uint64(3), true).Return(&usecase.ChainReceipt{TxHash: "0xvote"}, nil)
		replica.On("InsertVote", ctx, mock.Anything).
			Return(errors.Join(domain.ErrReplicaRejected, errors.New("duplicate key")))
		replica.On("ListProposals", ctx).Return([]*models.Proposal{}, nil)

		result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSuccess, result.Action.Outcome)
		replica.AssertNotCalled(t, "IncrementYesVotes", mock.Anything, mock.Anything)
	})
}

func TestVote_ReplicaDegraded(t *testing.T) {
	ctx := context.Background()

	chain := new(MockChainClient)
	replica := new(MockReplicaStore)
	uc := newVote(chain, replica)

	replica.On("GetProposal", ctx, uint64(3)).Return(activeProposal(3), nil)
	replica.On("HasVoted", ctx, uint64(3), voter).Return(false, nil)
	chain.On("WalletAddress").Return(voter)
	chain.On("Vote", ctx, uint64(3), true).Return(&usecase.ChainReceipt{TxHash: "0xvote"}, nil)
	replica.On("InsertVote", ctx, mock.Anything).Return(nil)
	replica.On("IncrementYesVotes", ctx, uint64(3)).
		Return(errors.New("replica store: write failed"))
	replica.On("ListProposals", ctx).Return([]*models.Proposal{}, nil)

	result, err := uc.Run(ctx, usecase.VoteParams{ProposalRef: "3", Support: true})

	// The chain vote stands even though the tally projection failed
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeReplicaDegraded, result.Action.Outcome)
	assert.True(t, result.Action.Binding())
	assert.Equal(t, "0xvote", result.Action.TxHash)
}
