package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// PurchaseCourse pays for a course with a direct value transfer to the
// instructor wallet and records the purchase in the local ledger. The
// ledger is a convenience side-store: a ledger write failure never undoes
// or hides the confirmed payment.
type PurchaseCourse struct {
	chain    ChainClient
	courses  *ListCourses
	ledger   PurchaseLedger
	progress ProgressSink
	log      *slog.Logger
}

// NewPurchaseCourse creates a new purchase course use case
func NewPurchaseCourse(
	chain ChainClient,
	courses *ListCourses,
	ledger PurchaseLedger,
	progress ProgressSink,
	log *slog.Logger,
) *PurchaseCourse {
	return &PurchaseCourse{
		chain:    chain,
		courses:  courses,
		ledger:   ledger,
		progress: progress,
		log:      log,
	}
}

// PurchaseCourseParams contains parameters for purchasing a course
type PurchaseCourseParams struct {
	// CourseRef is a fuzzy title match over the merged catalog
	CourseRef string
}

// PurchaseCourseResult describes a completed purchase.
type PurchaseCourseResult struct {
	Course *models.Course
	TxHash string
	// LedgerErr is set when the payment confirmed but the local ledger
	// write failed; the purchase is still binding.
	LedgerErr error
}

// Run resolves the course, transfers its price and records the purchase.
func (uc *PurchaseCourse) Run(ctx context.Context, params PurchaseCourseParams) (*PurchaseCourseResult, error) {
	course, err := uc.resolveCourse(ctx, params.CourseRef)
	if err != nil {
		return nil, err
	}

	price, err := config.ParseETH(course.PriceETH)
	if err != nil {
		return nil, err
	}

	// Instructor wallet when the course carries one, own wallet otherwise
	// (built-in catalog entries have no payout address configured).
	to := course.WalletAddress
	if to == "" {
		to = uc.chain.WalletAddress()
	}

	uc.progress.Start("Sending payment")
	receipt, err := uc.chain.Transfer(ctx, to, price)
	uc.progress.Stop()
	if err != nil {
		return nil, err
	}

	result := &PurchaseCourseResult{Course: course, TxHash: receipt.TxHash}

	lerr := uc.ledger.Record(uc.chain.WalletAddress(), models.Purchase{
		CourseTitle: course.Title,
		Instructor:  course.Instructor,
		PriceETH:    course.PriceETH,
		TxHash:      receipt.TxHash,
		PurchasedAt: time.Now(),
	})
	if lerr != nil {
		uc.log.Warn("payment confirmed but purchase ledger write failed",
			"course", course.Title, "tx", receipt.TxHash, "err", lerr)
		result.LedgerErr = lerr
	}

	return result, nil
}

func (uc *PurchaseCourse) resolveCourse(ctx context.Context, ref string) (*models.Course, error) {
	list, err := uc.courses.Run(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(list.Courses))
	for i, c := range list.Courses {
		titles[i] = c.Title
	}
	matches := fuzzy.Find(ref, titles)
	if len(matches) == 0 {
		return nil, domain.ErrCourseNotFound
	}
	return list.Courses[matches[0].Index], nil
}
