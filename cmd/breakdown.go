package cmd

import (
	"errors"
	"fmt"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/plan"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Per-job and monthly financial breakdown",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	in, err := gatherInputs()
	if err != nil {
		return err
	}
	cur := flagCurrency

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL BREAKDOWN"))
	fmt.Println()

	proj, err := plan.Compute(in)
	var ue *plan.UnprofitableError
	if errors.As(err, &ue) {
		fmt.Println(cli.RenderError(
			"Breakdown unavailable: the business model is unprofitable.",
			"Adjust inputs until net profit per cleaner is positive, then rerun.",
		))
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	// Per-job revenue split
	split := plan.JobSplit(in, proj)
	jobRows := make([][]string, 0, len(split))
	for _, s := range split {
		jobRows = append(jobRows, []string{
			s.Label,
			cli.FormatMoney(cur, s.Amount),
			cli.FormatPercent(s.Share),
		})
	}
	jobRows = append(jobRows, []string{"---"})
	jobRows = append(jobRows, []string{"Job Revenue", cli.FormatMoney(cur, in.JobRevenue), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Per Job",
		Headers: []string{"Component", "Amount", "Share"},
		Rows:    jobRows,
	}))
	fmt.Println()

	// Projected monthly financials for the staffed roster
	totals := plan.MonthlyTotals(in, proj)
	monthly := []struct {
		label  string
		amount float64
	}{
		{"Cleaner Pay", totals.CleanerPay},
		{"Transport", totals.Transport},
		{"Supplies", totals.Supplies},
		{"Hostel", totals.Hostel},
		{"Target Profit", totals.TargetProfit},
	}

	maxAmount := 0.0
	for _, m := range monthly {
		if m.amount > maxAmount {
			maxAmount = m.amount
		}
	}

	monthlyRows := make([][]string, 0, len(monthly)+2)
	for _, m := range monthly {
		monthlyRows = append(monthlyRows, []string{
			m.label,
			cli.FormatMoney(cur, m.amount),
			cli.RenderHorizontalBar(m.amount, maxAmount, 24),
		})
	}
	monthlyRows = append(monthlyRows, []string{"---"})
	monthlyRows = append(monthlyRows, []string{"Total Revenue", cli.FormatMoney(cur, totals.TotalRevenue()), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Monthly (%d cleaners)", proj.CleanersNeeded),
		Headers: []string{"Item", "Amount", ""},
		Rows:    monthlyRows,
	}))
	fmt.Println()

	// Revenue flow from gross to net
	flowRows := make([][]string, 0, 6)
	running := 0.0
	for i, step := range plan.Flow(totals) {
		switch i {
		case 0:
			running = step.Amount
		case 5:
			running = step.Amount // flow closes at net profit
		default:
			running += step.Amount
		}
		flowRows = append(flowRows, []string{
			step.Label,
			cli.FormatMoney(cur, step.Amount),
			cli.FormatMoney(cur, running),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Revenue Flow",
		Headers: []string{"Step", "Amount", "Running"},
		Rows:    flowRows,
	}))

	return nil
}
