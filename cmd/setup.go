package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"flowcast/internal/config"
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
	cfg := loadConfig()

	fmt.Println()
	fmt.Println("  Welcome to flowcast!")
	fmt.Println()

	// 1. Currency symbol
	fmt.Println("  1. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Default forecast horizon
	fmt.Println("  2. Default forecast horizon")
	fmt.Println("     (1) 14 days")
	fmt.Println("     (2) 30 days [default]")
	fmt.Println("     (3) 90 days")
	fmt.Println("     Or type a number of days directly.")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "1":
		cfg.General.DefaultHorizonDays = 14
	case "3":
		cfg.General.DefaultHorizonDays = 90
	case "", "2":
		cfg.General.DefaultHorizonDays = 30
	default:
		if n, err := strconv.Atoi(choice); err == nil && n > 0 && n <= 3650 {
			cfg.General.DefaultHorizonDays = n
		} else {
			cfg.General.DefaultHorizonDays = 30
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `flowcast add` to enter your first transaction, then `flowcast` to see the forecast.")
	fmt.Println()

	return nil
}
