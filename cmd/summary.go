package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowcast/internal/cli"
	"flowcast/internal/forecast"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Current balance, monthly totals, and projection",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
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

	currency := cfg.General.Currency
	ref := referenceDate()
	days := horizonDays(cfg)

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("FLOWCAST SUMMARY"))
		fmt.Println()
	}

	if len(txs) == 0 {
		fmt.Println("  No transactions yet. Run `flowcast add` to create one.")
		return nil
	}

	balance := forecast.CurrentBalance(txs, ref)
	month := forecast.MonthTotals(txs, ref)
	points := forecast.ProjectBaseline(txs, ref, days)
	final := points[len(points)-1].Balance
	min, max := points[0].Balance, points[0].Balance
	for _, p := range points[1:] {
		if p.Balance.LessThan(min) {
			min = p.Balance
		}
		if p.Balance.GreaterThan(max) {
			max = p.Balance
		}
	}

	monthName := month.Month.String()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Now",
		Rows: [][]string{
			{"Current balance", cli.FormatMoney(currency, balance)},
			{"Transactions", cli.FormatNumber(int64(len(txs)))},
		},
		RightAlign: []int{1},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("%s %d", monthName, month.Year),
		Rows: [][]string{
			{"Income", cli.FormatMoney(currency, month.Income)},
			{"Expenses", cli.FormatMoney(currency, month.Expenses)},
			{"---"},
			{"Net", cli.FormatSignedMoney(currency, month.Net())},
		},
		RightAlign: []int{1},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Next %dd", days),
		Rows: [][]string{
			{"Projected balance", cli.FormatMoney(currency, final)},
			{"Lowest point", cli.FormatMoney(currency, min)},
			{"Highest point", cli.FormatMoney(currency, max)},
		},
		RightAlign: []int{1},
	}))
	fmt.Println()

	return nil
}
