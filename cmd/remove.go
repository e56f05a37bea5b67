package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagForce bool

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a transaction by ID",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	tx, err := db.GetByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	if !flagForce {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s %q from %s?", tx.Type, tx.Description, tx.Date.Format("2006-01-02"))).
			Value(&confirmed)
		if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Canceled.")
			return nil
		}
	}

	if err := db.Delete(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("  Deleted #%d.\n", id)
	return nil
}
