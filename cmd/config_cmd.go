package cmd

import (
	"fmt"

	"cleanstaff/internal/cli"
	"cleanstaff/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	cur := cfg.Display.Currency

	fmt.Println("  [business]")
	fmt.Printf("    Job revenue:    %s/job\n", cli.FormatMoney(cur, cfg.Business.JobRevenue))
	fmt.Printf("    Cleaner pay:    %s/job\n", cli.FormatMoney(cur, cfg.Business.CleanerPay))
	fmt.Printf("    Transport:      %s/job\n", cli.FormatMoney(cur, cfg.Business.TransportCost))
	fmt.Printf("    Supplies:       %s/job\n", cli.FormatMoney(cur, cfg.Business.SuppliesCost))
	fmt.Printf("    Hostel:         %s/cleaner/month\n", cli.FormatMoney(cur, cfg.Business.HostelMonthly))
	fmt.Printf("    Jobs per day:   %d\n", cfg.Business.JobsPerDay)
	fmt.Printf("    Working days:   %d\n", cfg.Business.WorkingDays)
	fmt.Printf("    Target profit:  %s/month\n", cli.FormatMoney(cur, cfg.Business.TargetProfit))
	fmt.Println()

	fmt.Println("  [display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Printf("    Theme:    %s\n", cfg.Display.Theme)
	fmt.Println()

	fmt.Println("  Run `cleanstaff setup` to reconfigure.")
	return nil
}
