package forecast

import (
	"testing"

	"flowcast/internal/model"
)

func TestSummarize_FinalMinMax(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 1000, "2024-01-01", model.RecurNone),
		tx(t, model.Expense, 1500, "2024-01-10", model.RecurNone),
		tx(t, model.Income, 2000, "2024-01-20", model.RecurNone),
	}

	results := RunScenarios(nil, txs, mustDate(t, "2024-01-01"), 30)
	summaries := Summarize(results)
	if len(summaries) != 1 {
		t.Fatalf("summary count = %d, want 1", len(summaries))
	}

	s := summaries[0]
	if !s.Final.Equal(dec(1500)) {
		t.Fatalf("final balance = %s, want 1500", s.Final)
	}
	if !s.Min.Equal(dec(-500)) {
		t.Fatalf("min balance = %s, want -500", s.Min)
	}
	if !s.Max.Equal(dec(1500)) {
		t.Fatalf("max balance = %s, want 1500", s.Max)
	}
}

func TestSummarize_SortedByScenarioID(t *testing.T) {
	txs := sampleTxs(t)
	scenarios := []model.Scenario{
		{ID: 3, Name: "c", IncomeMultiplier: dec(1), ExpenseMultiplier: dec(2)},
		{ID: 1, Name: "a", IncomeMultiplier: dec(1), ExpenseMultiplier: dec(1)},
		{ID: 2, Name: "b", IncomeMultiplier: dec(2), ExpenseMultiplier: dec(1)},
	}

	summaries := Summarize(RunScenarios(scenarios, txs, mustDate(t, "2024-01-01"), 30))
	for i, wantID := range []int{1, 2, 3} {
		if summaries[i].Scenario.ID != wantID {
			t.Fatalf("summary[%d] scenario ID = %d, want %d", i, summaries[i].Scenario.ID, wantID)
		}
	}
}

func TestCurrentBalance_IncludesAsOfDay(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 100, "2024-01-01", model.RecurDaily),
	}

	got := CurrentBalance(txs, mustDate(t, "2024-01-03"))
	if !got.Equal(dec(300)) {
		t.Fatalf("balance through Jan 3 = %s, want 300", got)
	}
}

func TestMonthTotals_ExactWeeklyCount(t *testing.T) {
	// Five Mondays in January 2024; a weekly income anchored on Jan 1 must
	// contribute exactly five occurrences, not a 4.33-weeks estimate.
	txs := []model.Transaction{
		tx(t, model.Income, 100, "2024-01-01", model.RecurWeekly),
		tx(t, model.Expense, 60, "2024-01-02", model.RecurBiweekly),
	}

	totals := MonthTotals(txs, mustDate(t, "2024-01-15"))
	if !totals.Income.Equal(dec(500)) {
		t.Fatalf("january income = %s, want 500 (5 Mondays)", totals.Income)
	}
	// Biweekly from Jan 2: Jan 2, 16, 30.
	if !totals.Expenses.Equal(dec(180)) {
		t.Fatalf("january expenses = %s, want 180 (3 occurrences)", totals.Expenses)
	}
	if !totals.Net().Equal(dec(320)) {
		t.Fatalf("january net = %s, want 320", totals.Net())
	}
}

func TestMonthTotals_IgnoresOtherMonths(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 999, "2024-02-01", model.RecurNone),
	}

	totals := MonthTotals(txs, mustDate(t, "2024-01-15"))
	if !totals.Income.IsZero() || !totals.Expenses.IsZero() {
		t.Fatalf("january totals = %s income %s expenses, want zeros", totals.Income, totals.Expenses)
	}
}
