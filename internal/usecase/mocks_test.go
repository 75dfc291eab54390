package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) CreateProposal(ctx context.Context, title, description string, durationDays int) (uint64, *usecase.ChainReceipt, error) {
	args := m.Called(ctx, title, description, durationDays)
	if args.Get(1) == nil {
		return 0, nil, args.Error(2)
	}
	return args.Get(0).(uint64), args.Get(1).(*usecase.ChainReceipt), args.Error(2)
}

func (m *MockChainClient) Vote(ctx context.Context, proposalID uint64, support bool) (*usecase.ChainReceipt, error) {
	args := m.Called(ctx, proposalID, support)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ChainReceipt), args.Error(1)
}

func (m *MockChainClient) ExecuteProposal(ctx context.Context, proposalID uint64) (*usecase.ChainReceipt, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ChainReceipt), args.Error(1)
}

func (m *MockChainClient) GetProposal(ctx context.Context, proposalID uint64) (*usecase.ChainProposal, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ChainProposal), args.Error(1)
}

func (m *MockChainClient) GetVotingPower(ctx context.Context, address string) (*big.Int, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainClient) Transfer(ctx context.Context, to string, amountWei *big.Int) (*usecase.ChainReceipt, error) {
	args := m.Called(ctx, to, amountWei)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ChainReceipt), args.Error(1)
}

func (m *MockChainClient) WalletAddress() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChainClient) Balance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockReplicaStore is a mock implementation of ReplicaStore
type MockReplicaStore struct {
	mock.Mock
}

func (m *MockReplicaStore) InsertProposal(ctx context.Context, p *models.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockReplicaStore) UpdateProposalStatus(ctx context.Context, id uint64, status models.ProposalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReplicaStore) ListProposals(ctx context.Context) ([]*models.Proposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Proposal), args.Error(1)
}

func (m *MockReplicaStore) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockReplicaStore) InsertVote(ctx context.Context, v *models.Vote) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockReplicaStore) HasVoted(ctx context.Context, proposalID uint64, voter string) (bool, error) {
	args := m.Called(ctx, proposalID, voter)
	return args.Bool(0), args.Error(1)
}

func (m *MockReplicaStore) IncrementYesVotes(ctx context.Context, proposalID uint64) error {
	args := m.Called(ctx, proposalID)
	return args.Error(0)
}

func (m *MockReplicaStore) IncrementNoVotes(ctx context.Context, proposalID uint64) error {
	args := m.Called(ctx, proposalID)
	return args.Error(0)
}

func (m *MockReplicaStore) ListCourses(ctx context.Context, status models.CourseStatus) ([]*models.Course, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *MockReplicaStore) InsertCourse(ctx context.Context, c *models.Course) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockPurchaseLedger is a mock implementation of PurchaseLedger
type MockPurchaseLedger struct {
	mock.Mock
}

func (m *MockPurchaseLedger) Record(wallet string, p models.Purchase) error {
	args := m.Called(wallet, p)
	return args.Error(0)
}

func (m *MockPurchaseLedger) List(wallet string) ([]models.Purchase, error) {
	args := m.Called(wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Purchase), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
