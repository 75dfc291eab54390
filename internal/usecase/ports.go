package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// ChainProposal is the authoritative proposal state as read from the chain.
type ChainProposal struct {
	ID          uint64
	Title       string
	Description string
	Creator     string
	StartTime   time.Time
	EndTime     time.Time
	YesVotes    uint64
	NoVotes     uint64
	Executed    bool
}

// ChainReceipt identifies a confirmed chain transaction.
type ChainReceipt struct {
	TxHash      string
	BlockNumber uint64
}

// ChainClient performs the binding phase-1 operations against the DAO
// contract and the wallet. Every successful call is irreversible chain
// state; there is no rollback once confirmed.
type ChainClient interface {
	// CreateProposal submits a fee-bearing creation transaction and waits
	// for confirmation, returning the chain-assigned proposal ID.
	CreateProposal(ctx context.Context, title, description string, durationDays int) (uint64, *ChainReceipt, error)

	// Vote fails fast with domain.ErrVotingClosed when the proposal's end
	// time has passed, before any transaction is broadcast.
	Vote(ctx context.Context, proposalID uint64, support bool) (*ChainReceipt, error)

	// ExecuteProposal reverts chain-side unless the proposal has ended,
	// is passing and was not executed before.
	ExecuteProposal(ctx context.Context, proposalID uint64) (*ChainReceipt, error)

	GetProposal(ctx context.Context, proposalID uint64) (*ChainProposal, error)
	GetVotingPower(ctx context.Context, address string) (*big.Int, error)

	// Transfer sends a plain value transfer, used for course purchases.
	Transfer(ctx context.Context, to string, amountWei *big.Int) (*ChainReceipt, error)

	WalletAddress() string
	Balance(ctx context.Context) (*big.Int, error)
}

// ReplicaStore is the phase-2 projection of chain state in the hosted
// store. Calls fail with domain.ErrReplicaUnavailable (transient, caller
// retries) or domain.ErrReplicaRejected (permanent); retry policy lives
// with the caller so it stays visible and centrally controlled.
type ReplicaStore interface {
	InsertProposal(ctx context.Context, p *models.Proposal) error
	UpdateProposalStatus(ctx context.Context, id uint64, status models.ProposalStatus) error
	ListProposals(ctx context.Context) ([]*models.Proposal, error)
	GetProposal(ctx context.Context, id uint64) (*models.Proposal, error)

	InsertVote(ctx context.Context, v *models.Vote) error
	HasVoted(ctx context.Context, proposalID uint64, voter string) (bool, error)
	IncrementYesVotes(ctx context.Context, proposalID uint64) error
	IncrementNoVotes(ctx context.Context, proposalID uint64) error

	ListCourses(ctx context.Context, status models.CourseStatus) ([]*models.Course, error)
	InsertCourse(ctx context.Context, c *models.Course) error
}

// PurchaseLedger is the local purchase side-store keyed by wallet address.
// It carries no consistency guarantee against chain or replica state.
type PurchaseLedger interface {
	Record(wallet string, p models.Purchase) error
	List(wallet string) ([]models.Purchase, error)
}

// ProgressSink receives user-facing progress updates during long waits
// such as block confirmation.
type ProgressSink interface {
	Start(message string)
	Stop()
	Info(message string)
	Warn(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) Start(string) {}
func (NopProgress) Stop()        {}
func (NopProgress) Info(string)  {}
func (NopProgress) Warn(string)  {}

// ProposalSummary provides counts for the proposal list footer.
type ProposalSummary struct {
	Total    int
	Active   int
	Awaiting int
	Executed int
}

// ProposalListResult contains the reconciled proposal list the UI renders.
type ProposalListResult struct {
	Proposals []*models.Proposal
	Summary   ProposalSummary
}
