package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProposalState(t *testing.T) {
	now := time.Now()

	t.Run("ended is derived from the end time", func(t *testing.T) {
		p := &Proposal{EndTime: now.Add(time.Minute)}
		assert.False(t, p.Ended(now))

		p.EndTime = now.Add(-time.Minute)
		assert.True(t, p.Ended(now))

		// A proposal ending exactly now is not yet ended
		p.EndTime = now
		assert.False(t, p.Ended(now))
	})

	t.Run("passing requires strictly more yes than no", func(t *testing.T) {
		assert.True(t, (&Proposal{YesVotes: 3, NoVotes: 2}).Passing())
		assert.False(t, (&Proposal{YesVotes: 2, NoVotes: 2}).Passing())
		assert.False(t, (&Proposal{YesVotes: 1, NoVotes: 2}).Passing())
		assert.False(t, (&Proposal{}).Passing())
	})

	t.Run("executable combines ended, passing and not executed", func(t *testing.T) {
		p := &Proposal{
			EndTime:  now.Add(-time.Hour),
			YesVotes: 3,
			NoVotes:  1,
			Status:   ProposalStatusActive,
		}
		assert.True(t, p.Executable(now))

		executed := *p
		executed.Status = ProposalStatusExecuted
		assert.False(t, executed.Executable(now))

		open := *p
		open.EndTime = now.Add(time.Hour)
		assert.False(t, open.Executable(now))

		tied := *p
		tied.NoVotes = 3
		assert.False(t, tied.Executable(now))
	})

	t.Run("total votes", func(t *testing.T) {
		assert.Equal(t, uint64(5), (&Proposal{YesVotes: 3, NoVotes: 2}).TotalVotes())
	})
}
