package tui

import (
	"fmt"
	"strings"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/plan"
	"cleanstaff/internal/tui/components"
	"cleanstaff/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	p := a.proj
	var b strings.Builder

	// Row 1: status banner
	if a.unprofitable {
		banner := fmt.Sprintf("✗ %s\nEach job and month loses money at these rates. Raise the job rate or cut costs on the Inputs tab.", a.reason)
		b.WriteString(components.AccentCard("Plan Status", banner, cw, t.Red))
	} else {
		banner := fmt.Sprintf("✓ Profitable: %s cleaners cover the %s monthly profit goal.",
			cli.FormatNumber(int64(p.CleanersNeeded)),
			cli.FormatMoney(a.currency, a.in.TargetProfit))
		b.WriteString(components.AccentCard("Plan Status", banner, cw, t.Green))
	}
	b.WriteString("\n")

	// Row 2: per-cleaner metric cards
	profitTone := t.Green
	if p.ProfitPerJob < 0 {
		profitTone = t.Red
	}
	netTone := t.Green
	if p.NetMonthlyPerCleaner <= 0 {
		netTone = t.Red
	}

	cards := []components.Metric{
		{
			Label: "Profit / Job",
			Value: cli.FormatMoney(a.currency, p.ProfitPerJob),
			Note:  fmt.Sprintf("on %s revenue", cli.FormatMoney(a.currency, a.in.JobRevenue)),
			Tone:  profitTone,
		},
		{
			Label: "Jobs / Cleaner",
			Value: cli.FormatNumber(int64(p.JobsPerCleanerMonthly)),
			Note:  fmt.Sprintf("%d/day × %d days", a.in.JobsPerDay, a.in.WorkingDays),
		},
		{
			Label: "Net / Cleaner",
			Value: cli.FormatMoney(a.currency, p.NetMonthlyPerCleaner),
			Note:  fmt.Sprintf("gross %s", cli.FormatMoneyCompact(a.currency, p.GrossMonthlyPerCleaner)),
			Tone:  netTone,
		},
		{
			Label: "Cleaners Needed",
			Value: cleanersValue(a.unprofitable, p.CleanersNeeded),
			Note:  fmt.Sprintf("goal %s", cli.FormatMoneyCompact(a.currency, a.in.TargetProfit)),
			Tone:  netTone,
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 3: goal coverage bar
	innerW := components.CardInnerWidth(cw)
	coverage := 0.0
	if !a.unprofitable && a.in.TargetProfit > 0 {
		coverage = float64(p.CleanersNeeded) * p.NetMonthlyPerCleaner / a.in.TargetProfit
	}
	if !a.unprofitable && a.in.TargetProfit == 0 {
		coverage = 1
	}
	barW := innerW - 24
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard(
		"Goal Coverage",
		components.GoalBar("Staffed net vs goal", coverage, 19, barW),
		cw,
	))
	b.WriteString("\n")

	// Row 4: staffing staircase across profit goals
	if p.NetMonthlyPerCleaner > 0 {
		b.WriteString(a.renderStaffingCurve(cw))
	}

	return b.String()
}

// renderStaffingCurve charts how headcount steps up as the profit goal
// grows from zero to double the current goal.
func (a App) renderStaffingCurve(cw int) string {
	hi := a.in.TargetProfit * 2
	if hi <= 0 {
		hi = 10000
	}

	const steps = 10
	points := plan.Sweep(a.in, plan.SweepTargetProfit, 0, hi, steps)

	vals := make([]float64, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		vals[i] = float64(pt.Projection.CleanersNeeded)
		labels[i] = compactAmount(pt.Value)
	}

	chartH := 8
	if a.isCompactLayout() {
		chartH = 6
	}

	return components.ContentCard(
		fmt.Sprintf("Cleaners Needed by Profit Goal (0 – %s)", cli.FormatMoneyCompact(a.currency, hi)),
		components.BarChart(vals, labels, theme.Active.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	)
}

func cleanersValue(unprofitable bool, n int) string {
	if unprofitable {
		return "—"
	}
	return cli.FormatNumber(int64(n))
}

// compactAmount renders a bare axis label without the currency symbol.
func compactAmount(v float64) string {
	switch {
	case v >= 1000:
		if v == float64(int64(v/1000))*1000 {
			return fmt.Sprintf("%.0fk", v/1000)
		}
		return fmt.Sprintf("%.1fk", v/1000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
