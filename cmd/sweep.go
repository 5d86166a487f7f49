package cmd

import (
	"fmt"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/plan"

	"github.com/spf13/cobra"
)

var (
	flagSweepField string
	flagSweepFrom  float64
	flagSweepTo    float64
	flagSweepSteps int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sensitivity sweep over one input",
	Long:  "Vary one input across a range while holding the rest fixed, showing how staffing and per-cleaner profit respond.",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&flagSweepField, "field", "target-profit", "Input to vary: target-profit, job-revenue, cleaner-pay, hostel")
	sweepCmd.Flags().Float64Var(&flagSweepFrom, "from", 0, "Range start")
	sweepCmd.Flags().Float64Var(&flagSweepTo, "to", 0, "Range end")
	sweepCmd.Flags().IntVar(&flagSweepSteps, "steps", 10, "Number of steps across the range")
	rootCmd.AddCommand(sweepCmd)
}

// defaultSweepRange picks a sensible range around the current input value
// when --from/--to are not given.
func defaultSweepRange(field plan.SweepField, in plan.Inputs) (float64, float64) {
	switch field {
	case plan.SweepTargetProfit:
		return 0, 2 * in.TargetProfit
	case plan.SweepJobRevenue:
		return in.JobRevenue / 2, in.JobRevenue * 2
	case plan.SweepCleanerPay:
		return 0, in.CleanerPay * 2
	case plan.SweepHostelMonthly:
		return 0, in.HostelMonthly * 2
	}
	return 0, 0
}

func runSweep(cmd *cobra.Command, _ []string) error {
	in, err := gatherInputs()
	if err != nil {
		return err
	}
	cur := flagCurrency

	field, ok := plan.SweepFieldByName(flagSweepField)
	if !ok {
		return fmt.Errorf("unknown sweep field %q", flagSweepField)
	}

	lo, hi := flagSweepFrom, flagSweepTo
	if !cmd.Flags().Changed("from") && !cmd.Flags().Changed("to") {
		lo, hi = defaultSweepRange(field, in)
	}
	if hi <= lo {
		return fmt.Errorf("sweep range is empty: --from %v --to %v", lo, hi)
	}

	points := plan.Sweep(in, field, lo, hi, flagSweepSteps)

	maxCleaners := 0
	for _, pt := range points {
		if pt.Projection.CleanersNeeded > maxCleaners {
			maxCleaners = pt.Projection.CleanersNeeded
		}
	}

	rows := make([][]string, 0, len(points))
	for _, pt := range points {
		if pt.Unprofitable {
			rows = append(rows, []string{
				cli.FormatMoneyCompact(cur, pt.Value),
				cli.FormatMoney(cur, pt.Projection.NetMonthlyPerCleaner),
				"—",
				"unprofitable",
			})
			continue
		}
		rows = append(rows, []string{
			cli.FormatMoneyCompact(cur, pt.Value),
			cli.FormatMoney(cur, pt.Projection.NetMonthlyPerCleaner),
			cli.FormatNumber(int64(pt.Projection.CleanersNeeded)),
			cli.RenderHorizontalBar(float64(pt.Projection.CleanersNeeded), float64(maxCleaners), 20),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SWEEP  %s", field)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{field.String(), "Net / Cleaner", "Cleaners", ""},
		Rows:    rows,
	}))

	return nil
}
