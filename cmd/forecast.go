package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowcast/internal/cli"
	"flowcast/internal/forecast"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project your balance day by day",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	txs, err := db.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	days := horizonDays(cfg)
	currency := cfg.General.Currency
	points := forecast.ProjectBaseline(txs, referenceDate(), days)

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  Next %dd", days)))
		fmt.Println()
	}

	if len(txs) == 0 {
		fmt.Println("  No transactions yet. Run `flowcast add` to create one.")
		return nil
	}

	// Scale the balance bars against the largest absolute balance.
	var scale float64
	for _, p := range points {
		f, _ := p.Balance.Abs().Float64()
		if f > scale {
			scale = f
		}
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		change := ""
		if !p.Change.IsZero() {
			change = cli.FormatSignedMoney(currency, p.Change)
		}
		f, _ := p.Balance.Float64()
		rows = append(rows, []string{
			p.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(p.Date.Weekday())),
			change,
			cli.FormatMoney(currency, p.Balance),
			cli.RenderBalanceBar(f, scale, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"Date", "Day", "Change", "Balance", ""},
		Rows:       rows,
		RightAlign: []int{2, 3},
	}))

	final := points[len(points)-1]
	fmt.Printf("\n  Projected balance on %s: %s\n\n",
		final.Date.Format("2006-01-02"),
		cli.FormatMoney(currency, final.Balance),
	)

	return nil
}
