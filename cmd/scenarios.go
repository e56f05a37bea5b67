package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"flowcast/internal/cli"
	"flowcast/internal/config"
	"flowcast/internal/forecast"
	"flowcast/internal/model"
)

var flagScenarios []string

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare what-if projections side by side",
	Long: `Compare what-if projections side by side.

Scenarios come from the config file presets, or from repeated --scenario
flags of the form NAME=INCOME:EXPENSE, e.g.

  flowcast scenarios --scenario "Raise=1.2:1" --scenario "Tighten=1:0.8"

With no scenarios defined anywhere, the baseline projection is shown.`,
	RunE: runScenarios,
}

func init() {
	scenariosCmd.Flags().StringArrayVarP(&flagScenarios, "scenario", "s", nil,
		"Scenario as NAME=INCOME:EXPENSE (repeatable)")
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, _ []string) error {
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

	scenarios := config.ScenarioPresets(cfg)
	if len(flagScenarios) > 0 {
		scenarios, err = parseScenarioFlags(flagScenarios)
		if err != nil {
			return err
		}
	}

	days := horizonDays(cfg)
	currency := cfg.General.Currency
	ref := referenceDate()

	results := forecast.RunScenarios(scenarios, txs, ref, days)
	summaries := forecast.Summarize(results)

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIOS  Next %dd", days)))
		fmt.Println()
	}

	rows := make([][]string, 0, len(summaries))
	for _, sum := range summaries {
		name := sum.Scenario.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", sum.Scenario.ID)
		}
		rows = append(rows, []string{
			name,
			cli.FormatMultiplier(sum.Scenario.IncomeMultiplier),
			cli.FormatMultiplier(sum.Scenario.ExpenseMultiplier),
			cli.FormatMoney(currency, sum.Final),
			cli.FormatMoney(currency, sum.Min),
			cli.FormatMoney(currency, sum.Max),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"Scenario", "Income", "Expenses", "Final", "Min", "Max"},
		Rows:       rows,
		RightAlign: []int{3, 4, 5},
	}))
	fmt.Println()

	return nil
}

// parseScenarioFlags turns NAME=INCOME:EXPENSE strings into scenarios with
// sequential IDs.
func parseScenarioFlags(raw []string) ([]model.Scenario, error) {
	scenarios := make([]model.Scenario, 0, len(raw))
	for i, spec := range raw {
		name, mults, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid scenario %q, want NAME=INCOME:EXPENSE", spec)
		}
		incomeRaw, expenseRaw, ok := strings.Cut(mults, ":")
		if !ok {
			return nil, fmt.Errorf("invalid scenario %q, want NAME=INCOME:EXPENSE", spec)
		}
		income, err := decimal.NewFromString(strings.TrimSpace(incomeRaw))
		if err != nil || income.IsNegative() {
			return nil, fmt.Errorf("scenario %q: invalid income multiplier %q", name, incomeRaw)
		}
		expense, err := decimal.NewFromString(strings.TrimSpace(expenseRaw))
		if err != nil || expense.IsNegative() {
			return nil, fmt.Errorf("scenario %q: invalid expense multiplier %q", name, expenseRaw)
		}
		scenarios = append(scenarios, model.Scenario{
			ID:                i + 1,
			Name:              strings.TrimSpace(name),
			IncomeMultiplier:  income,
			ExpenseMultiplier: expense,
		})
	}
	return scenarios, nil
}
