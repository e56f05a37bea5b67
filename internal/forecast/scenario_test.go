package forecast

import (
	"testing"

	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

func sampleTxs(t *testing.T) []model.Transaction {
	t.Helper()
	return []model.Transaction{
		tx(t, model.Income, 3000, "2024-01-01", model.RecurMonthly),
		tx(t, model.Expense, 150, "2024-01-05", model.RecurWeekly),
		tx(t, model.Expense, 900, "2024-01-01", model.RecurMonthly),
	}
}

func TestRunScenarios_EmptyListYieldsBaseline(t *testing.T) {
	txs := sampleTxs(t)
	ref := mustDate(t, "2024-01-01")

	results := RunScenarios(nil, txs, ref, 30)
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1 implicit baseline", len(results))
	}

	baseline, ok := results[0]
	if !ok {
		t.Fatal("baseline result missing under scenario ID 0")
	}

	direct := ProjectBaseline(txs, ref, 30)
	for i := range direct {
		if !baseline.Forecast[i].Balance.Equal(direct[i].Balance) {
			t.Fatalf("day %d baseline balance = %s, want %s (direct projection)",
				i, baseline.Forecast[i].Balance, direct[i].Balance)
		}
	}
}

func TestRunScenarios_NeutralScenarioMatchesBaseline(t *testing.T) {
	txs := sampleTxs(t)
	ref := mustDate(t, "2024-01-01")

	neutral := model.Scenario{ID: 7, Name: "Current Forecast",
		IncomeMultiplier: dec(1), ExpenseMultiplier: dec(1)}
	results := RunScenarios([]model.Scenario{neutral}, txs, ref, 45)

	direct := ProjectBaseline(txs, ref, 45)
	got := results[7].Forecast
	for i := range direct {
		if !got[i].Balance.Equal(direct[i].Balance) || !got[i].Change.Equal(direct[i].Change) {
			t.Fatalf("neutral scenario diverges from baseline at day %d: %s vs %s",
				i, got[i].Balance, direct[i].Balance)
		}
	}
}

func TestRunScenarios_IncomeScalingLeavesExpensesAlone(t *testing.T) {
	txs := sampleTxs(t)
	ref := mustDate(t, "2024-01-01")

	scenarios := []model.Scenario{
		{ID: 1, Name: "base", IncomeMultiplier: dec(1), ExpenseMultiplier: dec(1)},
		{ID: 2, Name: "double income", IncomeMultiplier: dec(2), ExpenseMultiplier: dec(1)},
	}
	results := RunScenarios(scenarios, txs, ref, 60)

	base := results[1].Forecast
	doubled := results[2].Forecast

	// Per-day change delta must equal the baseline's income-only change —
	// expense contributions are untouched.
	incomeOnly := Project(
		[]model.Transaction{txs[0]}, ref, 60, dec(1), dec(1))

	for i := range base {
		wantDelta := incomeOnly[i].Change
		gotDelta := doubled[i].Change.Sub(base[i].Change)
		if !gotDelta.Equal(wantDelta) {
			t.Fatalf("day %d change delta = %s, want %s (income contribution)", i, gotDelta, wantDelta)
		}
	}
}

func TestRunScenarios_IndependentOfOrder(t *testing.T) {
	txs := sampleTxs(t)
	ref := mustDate(t, "2024-01-01")

	a := model.Scenario{ID: 1, Name: "a", IncomeMultiplier: decimal.NewFromFloat(1.5), ExpenseMultiplier: dec(1)}
	b := model.Scenario{ID: 2, Name: "b", IncomeMultiplier: dec(1), ExpenseMultiplier: decimal.NewFromFloat(0.8)}

	forward := RunScenarios([]model.Scenario{a, b}, txs, ref, 30)
	reversed := RunScenarios([]model.Scenario{b, a}, txs, ref, 30)

	for _, id := range []int{1, 2} {
		f := forward[id].Forecast
		r := reversed[id].Forecast
		for i := range f {
			if !f[i].Balance.Equal(r[i].Balance) {
				t.Fatalf("scenario %d day %d balance depends on evaluation order: %s vs %s",
					id, i, f[i].Balance, r[i].Balance)
			}
		}
	}
}
