package components

import (
	"fmt"
	"strings"

	"cleanstaff/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a block-character progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := lipgloss.Color(CoverageColor(pct))

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// CoverageColor maps goal coverage to a color: full coverage is green,
// shortfalls shade through yellow and orange down to red.
func CoverageColor(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1.0:
		return string(t.Green)
	case pct >= 0.75:
		return string(t.Yellow)
	case pct >= 0.4:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// GoalBar renders a labeled progress bar with percentage, used for the
// profit goal coverage readout. pct is clamped to [0, 1] for the bar but
// the printed percentage keeps the real value (coverage can exceed 100%).
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	barPct := pct
	if barPct < 0 {
		barPct = 0
	}
	if barPct > 1 {
		barPct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(CoverageColor(barPct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(CoverageColor(barPct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(barPct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
