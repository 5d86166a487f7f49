// Package cmd implements the cleanstaff CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/config"
	"cleanstaff/internal/plan"

	"github.com/spf13/cobra"
)

var (
	flagJobRevenue  float64
	flagCleanerPay  float64
	flagTransport   float64
	flagSupplies    float64
	flagHostel      float64
	flagJobsPerDay  int
	flagWorkingDays int
	flagTarget      float64
	flagCurrency    string
)

var rootCmd = &cobra.Command{
	Use:   "cleanstaff",
	Short: "Cleaner staffing & profitability calculator",
	Long:  "Estimate how many cleaners you must staff to reach a target monthly profit, given per-job revenue, per-job costs, and monthly fixed costs.",
	RunE:  runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config seeds the flag defaults; flags override config.
	cfg, _ := config.Load()
	defaults := cfg.Inputs()

	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagJobRevenue, "job-revenue", "r", defaults.JobRevenue, "Revenue charged per job")
	pf.Float64VarP(&flagCleanerPay, "cleaner-pay", "p", defaults.CleanerPay, "Pay per job to the cleaner")
	pf.Float64Var(&flagTransport, "transport", defaults.TransportCost, "Transport cost per job")
	pf.Float64Var(&flagSupplies, "supplies", defaults.SuppliesCost, "Supplies cost per job")
	pf.Float64Var(&flagHostel, "hostel", defaults.HostelMonthly, "Hostel cost per cleaner per month")
	pf.IntVarP(&flagJobsPerDay, "jobs-per-day", "j", defaults.JobsPerDay, "Jobs one cleaner completes per working day")
	pf.IntVarP(&flagWorkingDays, "working-days", "d", defaults.WorkingDays, "Working days in the month")
	pf.Float64VarP(&flagTarget, "target-profit", "t", defaults.TargetProfit, "Target monthly profit")
	pf.StringVar(&flagCurrency, "currency", cfg.Display.Currency, "Currency symbol for money output")
}

// gatherInputs builds calculator inputs from the effective flag values.
func gatherInputs() (plan.Inputs, error) {
	in := plan.Inputs{
		JobRevenue:    flagJobRevenue,
		CleanerPay:    flagCleanerPay,
		TransportCost: flagTransport,
		SuppliesCost:  flagSupplies,
		HostelMonthly: flagHostel,
		JobsPerDay:    flagJobsPerDay,
		WorkingDays:   flagWorkingDays,
		TargetProfit:  flagTarget,
	}

	switch {
	case in.JobRevenue < 0, in.CleanerPay < 0, in.TransportCost < 0, in.SuppliesCost < 0, in.HostelMonthly < 0:
		return in, fmt.Errorf("money inputs must be non-negative")
	case in.JobsPerDay < 1:
		return in, fmt.Errorf("--jobs-per-day must be at least 1")
	case in.WorkingDays < 1:
		return in, fmt.Errorf("--working-days must be at least 1")
	case in.TargetProfit < 0:
		return in, fmt.Errorf("--target-profit must be non-negative")
	}

	return in, nil
}

func runPlan(_ *cobra.Command, _ []string) error {
	in, err := gatherInputs()
	if err != nil {
		return err
	}

	cur := flagCurrency

	fmt.Println()
	fmt.Println(cli.RenderTitle("STAFFING & PROFITABILITY"))
	fmt.Println()

	proj, err := plan.Compute(in)
	var ue *plan.UnprofitableError
	if errors.As(err, &ue) {
		fmt.Println(cli.RenderError(
			"Net profit per cleaner is zero or negative.",
			"Consider reducing costs or increasing revenue per job.",
		))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Metric", "Value"},
			Rows:    perCleanerRows(ue.Projection, cur),
		}))
		return nil
	}
	if err != nil {
		return err
	}

	totals := plan.MonthlyTotals(in, proj)

	fmt.Println(cli.RenderSuccess(fmt.Sprintf(
		"To reach %s monthly profit you need %d cleaners.",
		cli.FormatMoney(cur, in.TargetProfit), proj.CleanersNeeded,
	)))
	fmt.Println()

	rows := perCleanerRows(proj, cur)
	rows = append(rows, []string{"---"})
	rows = append(rows,
		[]string{"Cleaners Needed", cli.FormatNumber(int64(proj.CleanersNeeded))},
		[]string{"Total Jobs / Month", cli.FormatNumber(int64(totals.Jobs))},
		[]string{"Est. Monthly Revenue", cli.FormatMoney(cur, totals.Revenue)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}

func perCleanerRows(p plan.Projection, cur string) [][]string {
	return [][]string{
		{"Profit / Job", cli.FormatMoney(cur, p.ProfitPerJob)},
		{"Jobs / Cleaner / Month", cli.FormatNumber(int64(p.JobsPerCleanerMonthly))},
		{"Gross Profit / Cleaner / Month", cli.FormatMoney(cur, p.GrossMonthlyPerCleaner)},
		{"Net Profit / Cleaner / Month", cli.FormatMoney(cur, p.NetMonthlyPerCleaner)},
	}
}
