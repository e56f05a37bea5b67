package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flowcast/internal/cli"
	"flowcast/internal/tui/components"
	"flowcast/internal/tui/theme"
)

func (a App) renderScenariosTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency

	if len(a.txs) == 0 {
		return "\n  No transactions yet. Press [a] to add your first one."
	}
	if len(a.summaries) == 0 {
		return "\n  Projecting..."
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)

	money := func(d interface{ IsNegative() bool }, s string) string {
		if d.IsNegative() {
			return lossStyle.Render(s)
		}
		return gainStyle.Render(s)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "  %s\n\n",
		headerStyle.Render(fmt.Sprintf("Scenario comparison over the next %d days", a.horizon)))

	fmt.Fprintf(&b, "  %s\n",
		headerStyle.Render(fmt.Sprintf("%-18s %-8s %-9s %14s %14s %14s",
			"Scenario", "Income", "Expenses", "Final", "Min", "Max")))

	for _, sum := range a.summaries {
		name := sum.Scenario.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", sum.Scenario.ID)
		}

		fmt.Fprintf(&b, "  %s %s %s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-18s", truncStr(name, 18))),
			dimStyle.Render(fmt.Sprintf("%-8s", cli.FormatMultiplier(sum.Scenario.IncomeMultiplier))),
			dimStyle.Render(fmt.Sprintf("%-9s", cli.FormatMultiplier(sum.Scenario.ExpenseMultiplier))),
			money(sum.Final, fmt.Sprintf("%14s", cli.FormatMoney(currency, sum.Final))),
			money(sum.Min, fmt.Sprintf("%14s", cli.FormatMoney(currency, sum.Min))),
			money(sum.Max, fmt.Sprintf("%14s", cli.FormatMoney(currency, sum.Max))),
		)
	}

	// Sparkline per scenario when results are present
	if len(a.results) > 0 {
		b.WriteString("\n")
		sparkW := cw - 24
		if sparkW < 20 {
			sparkW = 20
		}
		for _, sum := range a.summaries {
			res, ok := a.results[sum.Scenario.ID]
			if !ok || len(res.Forecast) == 0 {
				continue
			}
			vals := make([]float64, len(res.Forecast))
			for i, p := range res.Forecast {
				vals[i], _ = p.Balance.Float64()
			}
			if len(vals) > sparkW {
				sampled := make([]float64, sparkW)
				for i := range sampled {
					sampled[i] = vals[i*(len(vals)-1)/(sparkW-1)]
				}
				vals = sampled
			}
			name := sum.Scenario.Name
			if name == "" {
				name = fmt.Sprintf("Scenario %d", sum.Scenario.ID)
			}
			color := t.Green
			if sum.Min.IsNegative() {
				color = t.Orange
			}
			fmt.Fprintf(&b, "  %s %s\n",
				dimStyle.Render(fmt.Sprintf("%-18s", truncStr(name, 18))),
				components.Sparkline(vals, color))
		}
	}

	if len(a.cfg.Scenarios) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Define scenario presets in the config file to compare more outcomes."))
	}

	return b.String()
}
