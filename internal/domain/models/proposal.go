package models

import "time"

// ProposalStatus represents the stored status of a governance proposal.
// "Ended but not yet executed" is derived from the end time, never stored.
type ProposalStatus string

const (
	ProposalStatusActive   ProposalStatus = "active"
	ProposalStatusExecuted ProposalStatus = "executed"
)

// Proposal is the replica projection of an on-chain proposal. The ID is
// assigned by the chain at creation and mirrored here unchanged; the chain
// remains the source of truth for the vote tallies.
type Proposal struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	CreatorAddress string         `gorm:"index;type:varchar(42)" json:"creator_address"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        time.Time      `json:"end_time"`
	YesVotes       uint64         `gorm:"not null;default:0" json:"yes_votes"`
	NoVotes        uint64         `gorm:"not null;default:0" json:"no_votes"`
	Status         ProposalStatus `gorm:"type:varchar(16);default:'active'" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// Ended reports whether the voting period is over at the given instant.
func (p *Proposal) Ended(now time.Time) bool {
	return now.After(p.EndTime)
}

// Passing reports whether the proposal would pass if executed now.
func (p *Proposal) Passing() bool {
	return p.YesVotes > p.NoVotes
}

// Executable reports whether the execute action should be offered at all:
// voting ended, passing, and not executed before.
func (p *Proposal) Executable(now time.Time) bool {
	return p.Status != ProposalStatusExecuted && p.Ended(now) && p.Passing()
}

// TotalVotes returns the combined yes and no tallies.
func (p *Proposal) TotalVotes() uint64 {
	return p.YesVotes + p.NoVotes
}
