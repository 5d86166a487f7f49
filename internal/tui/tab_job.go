package tui

import (
	"fmt"
	"strings"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/tui/components"
	"cleanstaff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderJobTab shows where each job's revenue goes: the cost slices and
// the profit remainder, as share bars plus a line-item math card.
func (a App) renderJobTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	halves := components.LayoutRow(cw, 2)

	splitCard := a.renderSplitCard(halves[0])
	mathCard := a.renderJobMathCard(halves[1])

	if a.isCompactLayout() {
		b.WriteString(a.renderSplitCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderJobMathCard(cw))
	} else {
		b.WriteString(components.CardRow([]string{splitCard, mathCard}))
	}
	b.WriteString("\n")

	// Share bars across the full width for the visual split
	innerW := components.CardInnerWidth(cw)
	labelW := 12
	valueW := 10
	barMax := innerW - labelW - valueW - 8
	if barMax < 4 {
		barMax = 4
	}

	sliceColors := []lipgloss.Color{t.Blue, t.Orange, t.Yellow}

	var bars strings.Builder
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	for i, s := range a.split {
		var color lipgloss.Color
		switch {
		case s.Label == "Profit" && s.Amount < 0:
			color = t.Red
		case s.Label == "Profit":
			color = t.Green
		case i < len(sliceColors):
			color = sliceColors[i]
		default:
			color = t.Accent
		}
		if i > 0 {
			bars.WriteString("\n")
		}
		bars.WriteString(components.HBar(
			s.Label,
			cli.FormatMoney(a.currency, s.Amount),
			s.Share,
			color,
			labelW, valueW, barMax,
		))
		bars.WriteString(" " + pctStyle.Render(cli.FormatPercent(s.Share)))
	}

	b.WriteString(components.ContentCard("Revenue Split per Job", bars.String(), cw))

	return b.String()
}

func (a App) renderSplitCard(w int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)

	var body strings.Builder
	for _, s := range a.split {
		fmt.Fprintf(&body, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", s.Label+":")),
			valueStyle.Render(cli.FormatMoney(a.currency, s.Amount)))
	}
	fmt.Fprintf(&body, "%s %s",
		labelStyle.Render(fmt.Sprintf("%-14s", "Job Revenue:")),
		valueStyle.Render(cli.FormatMoney(a.currency, a.in.JobRevenue)))

	return components.ContentCard("Per-Job Amounts", body.String(), w)
}

// renderJobMathCard spells out the per-job profit arithmetic.
func (a App) renderJobMathCard(w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	profitStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	if a.proj.ProfitPerJob < 0 {
		profitStyle = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	}

	perJobCosts := a.in.CleanerPay + a.in.TransportCost + a.in.SuppliesCost

	var body strings.Builder
	fmt.Fprintf(&body, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-14s", "Revenue:")),
		valueStyle.Render(cli.FormatMoney(a.currency, a.in.JobRevenue)))
	fmt.Fprintf(&body, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-14s", "Direct costs:")),
		valueStyle.Render("-"+cli.FormatMoney(a.currency, perJobCosts)))
	fmt.Fprintf(&body, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-14s", "Profit / job:")),
		profitStyle.Render(cli.FormatMoney(a.currency, a.proj.ProfitPerJob)))
	body.WriteString("\n")
	fmt.Fprintf(&body, "%s",
		labelStyle.Render(fmt.Sprintf("Hostel is monthly (%s), not per job.",
			cli.FormatMoneyCompact(a.currency, a.in.HostelMonthly))))

	return components.ContentCard("Job Economics", body.String(), w)
}
