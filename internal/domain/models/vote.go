package models

import "time"

// Vote records one cast vote in the replica. Votes are written once per
// successful chain vote and never updated or deleted. The chain contract,
// not this table, is what enforces one vote per (proposal, voter) pair.
type Vote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProposalID   uint64    `gorm:"index:idx_votes_proposal_voter;not null" json:"proposal_id"`
	VoterAddress string    `gorm:"index:idx_votes_proposal_voter;type:varchar(42);not null" json:"voter_address"`
	Support      bool      `json:"support"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Vote) TableName() string {
	return "votes"
}
