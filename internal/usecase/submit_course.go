package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// SubmitCourse inserts a pending course row for DAO approval. Submissions
// only touch the replica; nothing is committed on-chain until the
// governance process approves the course.
type SubmitCourse struct {
	chain   ChainClient
	replica ReplicaStore
	retry   RetryPolicy
}

// NewSubmitCourse creates a new submit course use case
func NewSubmitCourse(chain ChainClient, replica ReplicaStore) *SubmitCourse {
	return &SubmitCourse{
		chain:   chain,
		replica: replica,
		retry:   DefaultReplicaRetry(),
	}
}

// SubmitCourseParams contains parameters for submitting a course
type SubmitCourseParams struct {
	Title       string
	Description string
	Instructor  string
	PriceETH    string
}

// Run validates and stores the submission with status pending.
func (uc *SubmitCourse) Run(ctx context.Context, params SubmitCourseParams) (*models.Course, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if params.PriceETH == "" {
		params.PriceETH = "0.00005"
	}

	course := &models.Course{
		Title:         title,
		Description:   params.Description,
		Instructor:    params.Instructor,
		PriceETH:      params.PriceETH,
		WalletAddress: uc.chain.WalletAddress(),
		Status:        models.CourseStatusPending,
	}

	err := uc.retry.Do(ctx, func() error {
		return uc.replica.InsertCourse(ctx, course)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit course: %w", err)
	}

	return course, nil
}
