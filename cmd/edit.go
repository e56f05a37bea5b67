package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"flowcast/internal/cli"
	"flowcast/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction ID %q", args[0])
	}

	cfg := loadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	existing, err := db.GetByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	values := tui.FormValuesFromTransaction(existing)
	form := tui.NewTransactionForm(values, categoryNames(cmd, db))
	if err := form.Run(); err != nil {
		return err
	}

	updated, err := values.Transaction()
	if err != nil {
		return err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := db.Update(cmd.Context(), updated); err != nil {
		return err
	}

	fmt.Printf("  Updated #%d: %s %s\n",
		updated.ID,
		cli.FormatMoney(cfg.General.Currency, updated.Amount),
		updated.Description,
	)
	return nil
}
