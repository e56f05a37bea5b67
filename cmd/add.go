package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowcast/internal/cli"
	"flowcast/internal/store"
	"flowcast/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction interactively",
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	values := tui.NewFormValues()
	form := tui.NewTransactionForm(values, categoryNames(cmd, db))
	if err := form.Run(); err != nil {
		return err
	}

	tx, err := values.Transaction()
	if err != nil {
		return err
	}
	if err := db.Create(cmd.Context(), &tx); err != nil {
		return err
	}

	fmt.Printf("  Added %s %s: %s\n",
		tx.Type,
		cli.FormatMoney(cfg.General.Currency, tx.Amount),
		tx.Description,
	)
	return nil
}

func categoryNames(cmd *cobra.Command, db *store.Store) []string {
	cats, err := db.ListCategories(cmd.Context())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}
