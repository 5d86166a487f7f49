package tui

import (
	"cleanstaff/internal/config"
	"cleanstaff/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run wizard answers.
type setupValues struct {
	currency     string
	themeName    string
	saveDefaults bool
}

func needsFirstRunSetup() bool {
	return !config.Exists()
}

func defaultSetupValues(currency string) setupValues {
	if currency == "" {
		currency = "RM"
	}
	return setupValues{
		currency:     currency,
		themeName:    theme.Active.Name,
		saveDefaults: true,
	}
}

// newSetupForm builds the first-run huh wizard shown before the dashboard.
func newSetupForm(vals *setupValues) *huh.Form {
	themeNames := make([]string, len(theme.All))
	for i, t := range theme.All {
		themeNames[i] = t.Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cleanstaff").
				Description("A couple of quick settings before the dashboard opens.\nRun `cleanstaff setup` anytime to reconfigure."),

			huh.NewInput().
				Title("Currency symbol").
				Description("Shown next to every amount").
				CharLimit(8).
				Value(&vals.currency),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&vals.themeName),

			huh.NewConfirm().
				Title("Save current business inputs as defaults?").
				Value(&vals.saveDefaults),
		),
	)
}

// saveSetupConfig persists the wizard answers and applies them to the
// running session.
func (a *App) saveSetupConfig() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if a.setupVals.currency != "" {
		cfg.Display.Currency = a.setupVals.currency
		a.currency = a.setupVals.currency
	}

	cfg.Display.Theme = a.setupVals.themeName
	theme.SetActive(cfg.Display.Theme)

	if a.setupVals.saveDefaults {
		cfg.SetInputs(a.in)
		a.defaults = a.in
	}

	return config.Save(cfg)
}
