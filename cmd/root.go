package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"flowcast/internal/config"
	"flowcast/internal/forecast"
	"flowcast/internal/store"
)

var (
	flagHorizon int
	flagDBPath  string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "flowcast",
	Short: "Personal cash-flow forecasting CLI",
	Long:  "Track recurring income and expenses and project your balance forward.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagHorizon, "horizon", "n", 0, "Forecast horizon in days (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Path to the transactions database")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// loadConfig returns the user config, falling back to defaults on error.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// openStore opens the transaction database, honoring --db and the config
// storage path in that order.
func openStore(cfg config.Config) (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = cfg.Storage.DBPath
	}
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// horizonDays resolves the effective horizon from the --horizon flag and
// the config default.
func horizonDays(cfg config.Config) int {
	if flagHorizon > 0 {
		return flagHorizon
	}
	return cfg.General.DefaultHorizonDays
}

// referenceDate is today at UTC midnight, the anchor for all projections.
func referenceDate() time.Time {
	return forecast.Day(time.Now())
}
