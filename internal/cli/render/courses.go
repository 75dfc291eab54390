package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// CoursesRenderer renders the course catalog and purchase results
type CoursesRenderer struct {
	out io.Writer
}

// NewCoursesRenderer creates a new courses renderer
func NewCoursesRenderer(out io.Writer) *CoursesRenderer {
	return &CoursesRenderer{out: out}
}

// Render renders the merged catalog
func (r *CoursesRenderer) Render(result *usecase.CourseListResult) error {
	if result.ReplicaDegraded {
		fmt.Fprintln(r.out, FormatWarning("Community submissions are unavailable right now; showing the built-in catalog."))
	}
	if len(result.Courses) == 0 {
		fmt.Fprintln(r.out, "No courses available")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Title", "Instructor", "Price (ETH)"})
	for _, c := range result.Courses {
		t.AppendRow(table.Row{titleStyle.Sprint(c.Title), c.Instructor, c.PriceETH})
	}
	t.Render()

	return nil
}

// RenderPurchase renders a completed purchase
func (r *CoursesRenderer) RenderPurchase(result *usecase.PurchaseCourseResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Purchased %q for %s ETH", result.Course.Title, result.Course.PriceETH)))
	fmt.Fprintf(r.out, "   tx: %s\n", result.TxHash)
	if result.LedgerErr != nil {
		fmt.Fprintln(r.out, FormatWarning("The payment confirmed but could not be saved to your local purchase history."))
	}
	return nil
}

// RenderSubmission renders a stored course submission
func (r *CoursesRenderer) RenderSubmission(course *models.Course) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Submitted %q for review", course.Title)))
	fmt.Fprintln(r.out, "It will appear in the catalog once approved through governance.")
	return nil
}
