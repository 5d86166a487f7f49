package components

import (
	"strings"

	"cleanstaff/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. summary is the
// right-aligned plan readout (staffing count or the unprofitable notice).
func RenderStatusBar(width int, summary string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if summary != "" {
		right = summary + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left + strings.Repeat(" ", padding) + right

	return style.Render(bar)
}
