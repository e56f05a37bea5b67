package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"flowcast/internal/cli"
	"flowcast/internal/forecast"
	"flowcast/internal/model"
	"flowcast/internal/tui/components"
	"flowcast/internal/tui/theme"
)

func (a App) renderForecastTab(cw, contentH int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	var b strings.Builder

	if len(a.txs) == 0 {
		return "\n  No transactions yet. Press [a] to add your first one."
	}
	if len(a.points) == 0 {
		return "\n  Projecting..."
	}

	ref := forecast.Day(time.Now())
	balance := forecast.CurrentBalance(a.txs, ref)
	month := forecast.MonthTotals(a.txs, ref)
	final := a.points[len(a.points)-1]
	min := lowestPoint(a.points)

	balanceColor := t.Green
	if balance.IsNegative() {
		balanceColor = t.Red
	}
	finalColor := t.Green
	if final.Balance.IsNegative() {
		finalColor = t.Red
	}
	minColor := t.TextPrimary
	if min.Balance.IsNegative() {
		minColor = t.Orange
	}

	widths := components.LayoutRow(cw, 4)
	cards := []string{
		components.MetricCard("Balance", cli.FormatMoney(currency, balance), "today", balanceColor, widths[0]),
		components.MetricCard(
			fmt.Sprintf("In %dd", a.horizon),
			cli.FormatMoney(currency, final.Balance),
			final.Date.Format("Jan 2"),
			finalColor, widths[1]),
		components.MetricCard("Lowest", cli.FormatMoney(currency, min.Balance),
			min.Date.Format("Jan 2"), minColor, widths[2]),
		components.MetricCard("Net / month", cli.FormatSignedMoney(currency, month.Net()),
			month.Month.String()[:3], t.TextPrimary, widths[3]),
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	// Balance chart over the horizon
	chartH := contentH - 8
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 16 {
		chartH = 16
	}
	vals := make([]float64, len(a.points))
	labels := make([]string, len(a.points))
	for i, p := range a.points {
		vals[i], _ = p.Balance.Float64()
		labels[i] = chartDateLabel(p.Date, i, len(a.points))
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Projected Balance (%dd)", a.horizon),
		components.BalanceChart(vals, labels, components.CardInnerWidth(cw), chartH),
		cw,
	))

	// Warn if the projection dips below zero
	if min.Balance.IsNegative() {
		fmt.Fprintf(&b, "\n  ⚠ Balance goes negative on %s (%s)",
			min.Date.Format("Jan 2"),
			cli.FormatMoney(currency, min.Balance))
	}

	return b.String()
}

func lowestPoint(points []model.ForecastPoint) model.ForecastPoint {
	low := points[0]
	for _, p := range points[1:] {
		if p.Balance.LessThan(low.Balance) {
			low = p
		}
	}
	return low
}

// chartDateLabel builds compact X-axis labels: month abbreviation at the
// start and on month boundaries, day number elsewhere.
func chartDateLabel(d time.Time, i, n int) string {
	if i == 0 || (d.Day() == 1 && i != n-1) {
		return d.Format("Jan")
	}
	return strconv.Itoa(d.Day())
}
