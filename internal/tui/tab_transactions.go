package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flowcast/internal/cli"
	"flowcast/internal/model"
	"flowcast/internal/tui/theme"
)

func (a App) renderTransactionsTab(cw, contentH int) string {
	t := theme.Active
	currency := a.cfg.General.Currency

	if len(a.txs) == 0 {
		return "\n  No transactions yet. Press [a] to add your first one."
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	rowStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)

	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	descW := cw - 50
	if descW < 12 {
		descW = 12
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n",
		headerStyle.Render(fmt.Sprintf("%-11s %-8s %12s  %-10s %s",
			"Date", "Type", "Amount", "Repeats", "Description")))

	// Keep the cursor visible: scroll the window when the list is taller
	// than the content area.
	visible := contentH - 3
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(a.txs) {
		end = len(a.txs)
	}

	for i := start; i < end; i++ {
		tx := a.txs[i]

		amount := cli.FormatMoney(currency, tx.Amount)
		amountStyled := gainStyle.Render(fmt.Sprintf("%12s", amount))
		if tx.Type == model.Expense {
			amountStyled = lossStyle.Render(fmt.Sprintf("%12s", "-"+amount))
		}

		repeats := string(tx.Recurrence)
		if tx.Recurrence == model.RecurNone {
			repeats = "once"
		}

		line := fmt.Sprintf("%-11s %-8s %s  %-10s %s",
			tx.Date.Format("2006-01-02"),
			tx.Type,
			amountStyled,
			repeats,
			truncStr(tx.Description, descW),
		)

		if i == a.cursor {
			b.WriteString("  " + selectedStyle.Render("▸ ") + line + "\n")
		} else {
			b.WriteString("    " + rowStyle.Render(line) + "\n")
		}
	}

	if len(a.txs) > visible {
		fmt.Fprintf(&b, "\n  %s",
			dimStyle.Render(fmt.Sprintf("%d–%d of %d  [j/k] scroll", start+1, end, len(a.txs))))
	}
	fmt.Fprintf(&b, "\n  %s",
		dimStyle.Render("[a]dd  [e]dit  [d]elete"))

	return b.String()
}
