package tui

import (
	"fmt"
	"strings"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/tui/components"
	"cleanstaff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderMonthlyTab shows the whole-month picture once the workforce is
// staffed: headline totals, the component bar chart, and the revenue flow.
func (a App) renderMonthlyTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if a.unprofitable {
		b.WriteString(components.AccentCard(
			"Monthly Financials",
			"✗ No staffing level reaches the profit goal at these rates.\nMonthly totals need a profitable per-cleaner plan first.",
			cw, t.Red))
		return b.String()
	}

	// Row 1: headline totals
	cards := []components.Metric{
		{
			Label: "Monthly Jobs",
			Value: cli.FormatNumber(int64(a.totals.Jobs)),
			Note:  fmt.Sprintf("%d cleaners", a.proj.CleanersNeeded),
		},
		{
			Label: "Staffed Revenue",
			Value: cli.FormatMoneyCompact(a.currency, a.totals.Revenue),
			Note:  "jobs × job rate",
		},
		{
			Label: "Total Revenue",
			Value: cli.FormatMoneyCompact(a.currency, a.totals.TotalRevenue()),
			Note:  "costs + profit goal",
		},
		{
			Label: "Net Profit",
			Value: cli.FormatMoneyCompact(a.currency, a.totals.TargetProfit),
			Tone:  t.Green,
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: component bar chart
	vals := []float64{
		a.totals.CleanerPay,
		a.totals.Transport,
		a.totals.Supplies,
		a.totals.Hostel,
		a.totals.TargetProfit,
	}
	labels := []string{"pay", "trans", "supp", "hostel", "profit"}

	chartH := 9
	if a.isCompactLayout() {
		chartH = 6
	}
	b.WriteString(components.ContentCard(
		"Monthly Components",
		components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: revenue flow with running balance
	b.WriteString(a.renderFlowCard(cw))

	return b.String()
}

// renderFlowCard walks total revenue down through each cost to the
// retained profit, keeping a running balance per row.
func (a App) renderFlowCard(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	costStyle := lipgloss.NewStyle().Foreground(t.Red)
	topStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	netStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	runStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	running := 0.0
	for i, step := range a.flow {
		last := i == len(a.flow)-1

		var amount string
		switch {
		case i == 0:
			running = step.Amount
			amount = topStyle.Render(cli.FormatMoney(a.currency, step.Amount))
		case last:
			// Net profit is what the running balance closed at
			amount = netStyle.Render(cli.FormatMoney(a.currency, step.Amount))
		default:
			running += step.Amount
			amount = costStyle.Render(cli.FormatMoney(a.currency, step.Amount))
		}

		run := ""
		if !last {
			run = runStyle.Render(fmt.Sprintf("→ %s", cli.FormatMoneyCompact(a.currency, running)))
		}

		fmt.Fprintf(&body, "%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-15s", step.Label)),
			padAmount(amount),
			run)
		if !last {
			body.WriteString("\n")
		}
	}

	return components.ContentCard("Revenue Flow", body.String(), cw)
}

// padAmount right-aligns a styled amount by padding on visual width
// rather than byte length (ANSI codes inflate len).
func padAmount(s string) string {
	w := lipgloss.Width(s)
	if w >= 14 {
		return s
	}
	return strings.Repeat(" ", 14-w) + s
}
