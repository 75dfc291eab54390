package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// ListCourses merges the built-in catalog with DAO-approved submissions
// from the replica. A degraded replica falls back to the built-in catalog
// rather than failing the listing.
type ListCourses struct {
	replica ReplicaStore
	retry   RetryPolicy
	log     *slog.Logger
}

// NewListCourses creates a new list courses use case
func NewListCourses(replica ReplicaStore, log *slog.Logger) *ListCourses {
	return &ListCourses{
		replica: replica,
		retry:   DefaultReplicaRetry(),
		log:     log,
	}
}

// CourseListResult contains the merged course catalog.
type CourseListResult struct {
	Courses []*models.Course
	// ReplicaDegraded is set when approved submissions could not be
	// fetched and only the built-in catalog is shown.
	ReplicaDegraded bool
}

// Run fetches and merges the catalog.
func (uc *ListCourses) Run(ctx context.Context) (*CourseListResult, error) {
	result := &CourseListResult{Courses: BuiltinCourses()}

	var approved []*models.Course
	err := uc.retry.Do(ctx, func() error {
		var err error
		approved, err = uc.replica.ListCourses(ctx, models.CourseStatusApproved)
		return err
	})
	if err != nil {
		uc.log.Warn("failed to load approved courses, showing built-in catalog only", "err", err)
		result.ReplicaDegraded = true
		return result, nil
	}

	approved = lo.Map(approved, func(c *models.Course, _ int) *models.Course {
		if c.PriceETH == "" {
			c.PriceETH = "0.00005"
		}
		return c
	})
	result.Courses = append(result.Courses, approved...)

	return result, nil
}
