// Package cmd implements the flowcast CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowcast/internal/config"
	"flowcast/internal/store"
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

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default horizon: %d days\n", cfg.General.DefaultHorizonDays)
	fmt.Printf("    Currency:        %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Storage]")
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = store.DefaultPath()
	}
	fmt.Printf("    Database: %s\n", dbPath)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if len(cfg.Scenarios) > 0 {
		fmt.Println("  [Scenarios]")
		for _, s := range cfg.Scenarios {
			fmt.Printf("    %-16s income ×%.2f  expenses ×%.2f\n",
				s.Name, s.IncomeMultiplier, s.ExpenseMultiplier)
		}
		fmt.Println()
	}

	return nil
}
