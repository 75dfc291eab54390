package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// DashboardRenderer renders the wallet overview
type DashboardRenderer struct {
	out io.Writer
}

// NewDashboardRenderer creates a new dashboard renderer
func NewDashboardRenderer(out io.Writer) *DashboardRenderer {
	return &DashboardRenderer{out: out}
}

// Render renders the wallet overview and purchase history
func (r *DashboardRenderer) Render(result *usecase.DashboardResult) error {
	fmt.Fprintf(r.out, "Wallet:       %s\n", result.Wallet)
	fmt.Fprintf(r.out, "Balance:      %s\n", FormatETH(result.BalanceWei))

	if result.VotingPower != nil {
		fmt.Fprintf(r.out, "Voting power: %s\n", result.VotingPower.String())
	} else {
		fmt.Fprintf(r.out, "Voting power: %s\n", FormatWarning("unavailable"))
	}

	fmt.Fprintln(r.out)
	if len(result.Purchases) == 0 {
		fmt.Fprintln(r.out, "No purchases yet")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Course", "Instructor", "Price (ETH)", "Tx", "Date"})
	for _, p := range result.Purchases {
		t.AppendRow(table.Row{
			p.CourseTitle,
			p.Instructor,
			p.PriceETH,
			ShortHash(p.TxHash),
			p.PurchasedAt.Format("2006-01-02"),
		})
	}
	t.Render()

	return nil
}
