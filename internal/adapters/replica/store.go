package replica

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// Store implements the ReplicaStore port against the hosted Postgres
// replica. It never retries internally; transient failures surface as
// domain.ErrReplicaUnavailable so the retry policy stays with the caller.
type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewStore connects to the replica and ensures the schema exists.
func NewStore(cfg *config.RuntimeConfig, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.ReplicaDSN), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to replica: %w", err)
	}

	if err := db.AutoMigrate(&models.Proposal{}, &models.Vote{}, &models.Course{}); err != nil {
		return nil, fmt.Errorf("failed to migrate replica schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// InsertProposal mirrors a chain-created proposal into the replica.
func (s *Store) InsertProposal(ctx context.Context, p *models.Proposal) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return wrapErr("insert proposal", err)
	}
	return nil
}

// UpdateProposalStatus flips the stored status. Updating a row that is not
// there is reported, not swallowed: the replica is missing a proposal the
// chain knows about.
func (s *Store) UpdateProposalStatus(ctx context.Context, id uint64, status models.ProposalStatus) error {
	res := s.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return wrapErr("update proposal status", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update proposal status: %w", domain.ErrProposalNotFound)
	}
	return nil
}

// ListProposals returns all proposals, newest first.
func (s *Store) ListProposals(ctx context.Context) ([]*models.Proposal, error) {
	var proposals []*models.Proposal
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, wrapErr("list proposals", err)
	}
	return proposals, nil
}

// GetProposal fetches one proposal by its chain-assigned ID.
func (s *Store) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	var proposal models.Proposal
	err := s.db.WithContext(ctx).First(&proposal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProposalNotFound
	}
	if err != nil {
		return nil, wrapErr("get proposal", err)
	}
	return &proposal, nil
}

// InsertVote records one cast vote.
func (s *Store) InsertVote(ctx context.Context, v *models.Vote) error {
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		return wrapErr("insert vote", err)
	}
	return nil
}

// HasVoted reports whether a vote row exists for (proposal, voter).
func (s *Store) HasVoted(ctx context.Context, proposalID uint64, voter string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("proposal_id = ? AND voter_address = ?", proposalID, voter).
		Count(&count).Error
	if err != nil {
		return false, wrapErr("has voted", err)
	}
	return count > 0, nil
}

// IncrementYesVotes bumps the yes counter by one, atomically in SQL so
// concurrent vote recordings can't lose updates to read-modify-write races.
func (s *Store) IncrementYesVotes(ctx context.Context, proposalID uint64) error {
	return s.increment(ctx, proposalID, "yes_votes")
}

// IncrementNoVotes bumps the no counter by one, atomically in SQL.
func (s *Store) IncrementNoVotes(ctx context.Context, proposalID uint64) error {
	return s.increment(ctx, proposalID, "no_votes")
}

func (s *Store) increment(ctx context.Context, proposalID uint64, column string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("id = ?", proposalID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return wrapErr("increment "+column, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("increment %s: %w", column, domain.ErrProposalNotFound)
	}
	return nil
}

// ListCourses returns submitted courses with the given approval status.
func (s *Store) ListCourses(ctx context.Context, status models.CourseStatus) ([]*models.Course, error) {
	var courses []*models.Course
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, wrapErr("list courses", err)
	}
	return courses, nil
}

// InsertCourse stores a course submission.
func (s *Store) InsertCourse(ctx context.Context, c *models.Course) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return wrapErr("insert course", err)
	}
	return nil
}

// wrapErr classifies store failures: constraint violations are permanent
// rejections, everything else is treated as transient unavailability.
func wrapErr(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrInvalidData):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrReplicaRejected, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrReplicaUnavailable, err)
	}
}

// Ensure the adapter implements the interface
var _ usecase.ReplicaStore = (*Store)(nil)
