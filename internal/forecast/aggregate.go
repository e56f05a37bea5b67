package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

// Summarize derives the comparison figures (final, min, max balance) for each
// scenario result. It recomputes nothing and is read-only over its input.
// Summaries are sorted by ascending scenario ID so serialized output is
// deterministic regardless of map iteration order.
func Summarize(results map[int]model.ScenarioResult) []model.ScenarioSummary {
	summaries := make([]model.ScenarioSummary, 0, len(results))
	for _, r := range results {
		if len(r.Forecast) == 0 {
			continue
		}
		s := model.ScenarioSummary{
			Scenario: r.Scenario,
			Final:    r.Forecast[len(r.Forecast)-1].Balance,
			Min:      r.Forecast[0].Balance,
			Max:      r.Forecast[0].Balance,
		}
		for _, p := range r.Forecast[1:] {
			if p.Balance.LessThan(s.Min) {
				s.Min = p.Balance
			}
			if p.Balance.GreaterThan(s.Max) {
				s.Max = p.Balance
			}
		}
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Scenario.ID < summaries[j].Scenario.ID
	})
	return summaries
}

// CurrentBalance returns the unscaled running balance through asOf, inclusive.
func CurrentBalance(txs []model.Transaction, asOf time.Time) decimal.Decimal {
	balance := decimal.Zero
	end := Day(asOf)
	for _, tx := range txs {
		n := len(Occurrences(tx, Day(tx.Date), end))
		if n > 0 {
			balance = balance.Add(tx.Signed().Mul(decimal.NewFromInt(int64(n))))
		}
	}
	return balance
}

// MonthTotals computes exact income and expense totals for the calendar month
// containing anyDay, by expanding each transaction over that month. Weekly and
// biweekly cadences therefore contribute their true occurrence count for the
// month in question, not an average-weeks-per-month estimate.
func MonthTotals(txs []model.Transaction, anyDay time.Time) model.MonthlyTotals {
	day := Day(anyDay)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	totals := model.MonthlyTotals{Month: day.Month(), Year: day.Year()}
	for _, tx := range txs {
		n := len(Occurrences(tx, first, last))
		if n == 0 {
			continue
		}
		sum := tx.Amount.Mul(decimal.NewFromInt(int64(n)))
		if tx.Type == model.Expense {
			totals.Expenses = totals.Expenses.Add(sum)
		} else {
			totals.Income = totals.Income.Add(sum)
		}
	}
	return totals
}
