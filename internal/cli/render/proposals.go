package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// Color styles for proposal output
var (
	activeStyle   = color.New(color.FgGreen)
	awaitingStyle = color.New(color.FgYellow)
	executedStyle = color.New(color.Faint)
	titleStyle    = color.New(color.Bold)
)

// ProposalsRenderer renders proposal lists as formatted tables
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// Render renders the proposal list with a summary line
func (r *ProposalsRenderer) Render(result *usecase.ProposalListResult) error {
	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Yes", "No", "Ends", "Status"})

	now := time.Now()
	for _, p := range result.Proposals {
		t.AppendRow(table.Row{
			p.ID,
			titleStyle.Sprint(p.Title),
			p.YesVotes,
			p.NoVotes,
			p.EndTime.Format("2006-01-02 15:04"),
			statusLabel(p, now),
		})
	}
	t.Render()

	s := result.Summary
	fmt.Fprintf(r.out, "\n%d proposals: %d active, %d awaiting execution, %d executed\n",
		s.Total, s.Active, s.Awaiting, s.Executed)

	return nil
}

// statusLabel derives the display status. "Ended" is never stored; it
// comes from comparing the end time against now.
func statusLabel(p *models.Proposal, now time.Time) string {
	switch {
	case p.Status == models.ProposalStatusExecuted:
		return executedStyle.Sprint("executed")
	case !p.Ended(now):
		return activeStyle.Sprint("active")
	case p.Passing():
		return awaitingStyle.Sprint("passed, awaiting execution")
	default:
		return executedStyle.Sprint("ended, did not pass")
	}
}
