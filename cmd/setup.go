package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cleanstaff/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to cleanstaff!")
	fmt.Println()

	// 1. Currency
	fmt.Println("  1. Currency symbol for money output")
	fmt.Printf("     Current: %s\n", cfg.Display.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.Display.Currency = currency
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Display.Theme = "catppuccin-mocha"
	case "3":
		cfg.Display.Theme = "terminal"
	default:
		cfg.Display.Theme = "flexoki-dark"
	}
	fmt.Println()

	// 3. Business model defaults
	fmt.Println("  3. Default business model")
	fmt.Println("     These seed every run; flags and the dashboard can still override them.")
	fmt.Println("     Press Enter to keep each current value.")
	fmt.Println()

	in := cfg.Inputs()
	in.JobRevenue = promptMoney(reader, "Job revenue (per job)", cfg.Display.Currency, in.JobRevenue)
	in.CleanerPay = promptMoney(reader, "Cleaner pay (per job)", cfg.Display.Currency, in.CleanerPay)
	in.TransportCost = promptMoney(reader, "Transport cost (per job)", cfg.Display.Currency, in.TransportCost)
	in.SuppliesCost = promptMoney(reader, "Supplies cost (per job)", cfg.Display.Currency, in.SuppliesCost)
	in.HostelMonthly = promptMoney(reader, "Hostel cost (per cleaner/month)", cfg.Display.Currency, in.HostelMonthly)
	in.JobsPerDay = promptInt(reader, "Jobs per cleaner per day (1-5)", in.JobsPerDay, 1, 5)
	in.WorkingDays = promptInt(reader, "Working days per month (1-31)", in.WorkingDays, 1, 31)
	in.TargetProfit = promptMoney(reader, "Target monthly profit", cfg.Display.Currency, in.TargetProfit)
	cfg.SetInputs(in)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `cleanstaff setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptMoney(reader *bufio.Reader, label, currency string, current float64) float64 {
	fmt.Printf("     %s [%s %.2f] > ", label, currency, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		fmt.Println("     Keeping current value.")
		return current
	}
	return v
}

func promptInt(reader *bufio.Reader, label string, current, lo, hi int) int {
	fmt.Printf("     %s [%d] > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.Atoi(line)
	if err != nil || v < lo || v > hi {
		fmt.Println("     Keeping current value.")
		return current
	}
	return v
}
