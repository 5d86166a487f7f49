package tui

import (
	"fmt"
	"strconv"
	"strings"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/config"
	"cleanstaff/internal/plan"
	"cleanstaff/internal/tui/components"
	"cleanstaff/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	inputFieldJobRevenue = iota
	inputFieldCleanerPay
	inputFieldTransport
	inputFieldSupplies
	inputFieldHostel
	inputFieldJobsPerDay
	inputFieldWorkingDays
	inputFieldTargetProfit
	inputFieldCount // sentinel
)

const (
	minJobsPerDay  = 1
	maxJobsPerDay  = 5
	minWorkingDays = 1
	maxWorkingDays = 31
)

// inputsState tracks the inputs tab state. Edits here are session-local;
// saved defaults only change through setup.
type inputsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	flash   string // transient status line under the fields
	editErr error  // non-nil if the last edit was rejected
}

func newInputsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20
	return ti
}

func (a App) inputsStartEdit() (tea.Model, tea.Cmd) {
	a.inputs.editing = true
	a.inputs.flash = ""
	a.inputs.editErr = nil

	ti := newInputsInput()

	switch a.inputs.cursor {
	case inputFieldJobRevenue:
		ti.SetValue(trimFloat(a.in.JobRevenue))
	case inputFieldCleanerPay:
		ti.SetValue(trimFloat(a.in.CleanerPay))
	case inputFieldTransport:
		ti.SetValue(trimFloat(a.in.TransportCost))
	case inputFieldSupplies:
		ti.SetValue(trimFloat(a.in.SuppliesCost))
	case inputFieldHostel:
		ti.SetValue(trimFloat(a.in.HostelMonthly))
	case inputFieldJobsPerDay:
		ti.Placeholder = fmt.Sprintf("%d-%d", minJobsPerDay, maxJobsPerDay)
		ti.SetValue(strconv.Itoa(a.in.JobsPerDay))
	case inputFieldWorkingDays:
		ti.Placeholder = fmt.Sprintf("%d-%d", minWorkingDays, maxWorkingDays)
		ti.SetValue(strconv.Itoa(a.in.WorkingDays))
	case inputFieldTargetProfit:
		ti.SetValue(trimFloat(a.in.TargetProfit))
	}

	ti.Focus()
	a.inputs.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateInputsEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		in, err := applyInputField(a.in, a.inputs.cursor, a.inputs.input.Value())
		a.inputs.editing = false
		a.inputs.editErr = err
		if err == nil {
			a.in = in
			a.recompute()
		}
		return a, nil
	case "esc":
		a.inputs.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs.input, cmd = a.inputs.input.Update(msg)
	return a, cmd
}

// applyInputField parses raw and sets the addressed field, enforcing the
// same bounds the CLI flags enforce. The returned Inputs is untouched on
// error.
func applyInputField(in plan.Inputs, field int, raw string) (plan.Inputs, error) {
	raw = strings.TrimSpace(raw)

	switch field {
	case inputFieldJobsPerDay, inputFieldWorkingDays:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return in, fmt.Errorf("not a whole number: %q", raw)
		}
		if field == inputFieldJobsPerDay {
			if v < minJobsPerDay || v > maxJobsPerDay {
				return in, fmt.Errorf("jobs per day must be %d-%d", minJobsPerDay, maxJobsPerDay)
			}
			in.JobsPerDay = v
		} else {
			if v < minWorkingDays || v > maxWorkingDays {
				return in, fmt.Errorf("working days must be %d-%d", minWorkingDays, maxWorkingDays)
			}
			in.WorkingDays = v
		}
		return in, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return in, fmt.Errorf("not a number: %q", raw)
	}
	if v < 0 {
		return in, fmt.Errorf("must not be negative")
	}

	switch field {
	case inputFieldJobRevenue:
		in.JobRevenue = v
	case inputFieldCleanerPay:
		in.CleanerPay = v
	case inputFieldTransport:
		in.TransportCost = v
	case inputFieldSupplies:
		in.SuppliesCost = v
	case inputFieldHostel:
		in.HostelMonthly = v
	case inputFieldTargetProfit:
		in.TargetProfit = v
	}
	return in, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (a App) renderInputsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Job Revenue", cli.FormatMoney(a.currency, a.in.JobRevenue)},
		{"Cleaner Pay / Job", cli.FormatMoney(a.currency, a.in.CleanerPay)},
		{"Transport / Job", cli.FormatMoney(a.currency, a.in.TransportCost)},
		{"Supplies / Job", cli.FormatMoney(a.currency, a.in.SuppliesCost)},
		{"Hostel / Month", cli.FormatMoney(a.currency, a.in.HostelMonthly)},
		{"Jobs / Day", strconv.Itoa(a.in.JobsPerDay)},
		{"Working Days", strconv.Itoa(a.in.WorkingDays)},
		{"Profit Goal", cli.FormatMoney(a.currency, a.in.TargetProfit)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.inputs.editing && i == a.inputs.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.inputs.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.inputs.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.inputs.editErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(a.inputs.editErr.Error()))
		formBody.WriteString("\n")
	} else if a.inputs.flash != "" {
		greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render(a.inputs.flash))
		formBody.WriteString("\n")
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [r] reset  [Esc] cancel"))

	// Info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Edits apply to this session only.") + "\n")
	infoBody.WriteString(labelStyle.Render("Run ") + valueStyle.Render("cleanstaff setup") +
		labelStyle.Render(" to change saved defaults.") + "\n")
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Business Inputs", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About", infoBody.String(), cw))

	return b.String()
}
