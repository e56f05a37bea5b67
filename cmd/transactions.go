package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flowcast/internal/cli"
	"flowcast/internal/model"
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"ls", "list"},
	Short:   "List all transactions",
	RunE:    runTransactions,
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(cmd *cobra.Command, _ []string) error {
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

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("TRANSACTIONS"))
		fmt.Println()
	}

	if len(txs) == 0 {
		fmt.Println("  No transactions yet. Run `flowcast add` to create one.")
		return nil
	}

	currency := cfg.General.Currency
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format("2006-01-02"),
			string(tx.Type),
			cli.FormatMoney(currency, tx.Signed()),
			recurrenceLabel(tx),
			tx.Description,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"ID", "Date", "Type", "Amount", "Repeats", "Description"},
		Rows:       rows,
		RightAlign: []int{0, 3},
	}))
	fmt.Println()

	return nil
}

func recurrenceLabel(tx model.Transaction) string {
	if tx.Recurrence == model.RecurNone {
		return "once"
	}
	label := string(tx.Recurrence)
	if tx.RecurrenceEnd != nil {
		label += " until " + tx.RecurrenceEnd.Format("2006-01-02")
	}
	return strings.ToLower(label)
}
