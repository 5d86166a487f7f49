// Package config loads and saves cleanstaff configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cleanstaff/internal/plan"

	"github.com/BurntSushi/toml"
)

// Config holds all cleanstaff configuration.
type Config struct {
	Business BusinessConfig `toml:"business"`
	Display  DisplayConfig  `toml:"display"`
}

// BusinessConfig holds the default business model inputs. These seed the
// flags and the dashboard on startup; nothing writes them back except the
// explicit setup path.
type BusinessConfig struct {
	JobRevenue    float64 `toml:"job_revenue"`
	CleanerPay    float64 `toml:"cleaner_pay"`
	TransportCost float64 `toml:"transport_cost"`
	SuppliesCost  float64 `toml:"supplies_cost"`
	HostelMonthly float64 `toml:"hostel_monthly"`
	JobsPerDay    int     `toml:"jobs_per_day"`
	WorkingDays   int     `toml:"working_days"`
	TargetProfit  float64 `toml:"target_profit"`
}

// DisplayConfig holds currency and theme settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Theme    string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	in := plan.DefaultInputs()
	return Config{
		Business: BusinessConfig{
			JobRevenue:    in.JobRevenue,
			CleanerPay:    in.CleanerPay,
			TransportCost: in.TransportCost,
			SuppliesCost:  in.SuppliesCost,
			HostelMonthly: in.HostelMonthly,
			JobsPerDay:    in.JobsPerDay,
			WorkingDays:   in.WorkingDays,
			TargetProfit:  in.TargetProfit,
		},
		Display: DisplayConfig{
			Currency: "RM",
			Theme:    "flexoki-dark",
		},
	}
}

// Inputs converts the configured business defaults into calculator inputs.
func (c Config) Inputs() plan.Inputs {
	return plan.Inputs{
		JobRevenue:    c.Business.JobRevenue,
		CleanerPay:    c.Business.CleanerPay,
		TransportCost: c.Business.TransportCost,
		SuppliesCost:  c.Business.SuppliesCost,
		HostelMonthly: c.Business.HostelMonthly,
		JobsPerDay:    c.Business.JobsPerDay,
		WorkingDays:   c.Business.WorkingDays,
		TargetProfit:  c.Business.TargetProfit,
	}
}

// SetInputs stores calculator inputs as the configured defaults.
func (c *Config) SetInputs(in plan.Inputs) {
	c.Business = BusinessConfig{
		JobRevenue:    in.JobRevenue,
		CleanerPay:    in.CleanerPay,
		TransportCost: in.TransportCost,
		SuppliesCost:  in.SuppliesCost,
		HostelMonthly: in.HostelMonthly,
		JobsPerDay:    in.JobsPerDay,
		WorkingDays:   in.WorkingDays,
		TargetProfit:  in.TargetProfit,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cleanstaff")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cleanstaff")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
