package forecast

import (
	"testing"

	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestProject_MonthlyIncomeAcrossMonthBoundary(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 1000, "2024-01-01", model.RecurMonthly),
	}

	points := ProjectBaseline(txs, mustDate(t, "2024-01-01"), 31)
	if len(points) != 32 {
		t.Fatalf("point count = %d, want 32", len(points))
	}

	if !points[0].Change.Equal(dec(1000)) || !points[0].Balance.Equal(dec(1000)) {
		t.Fatalf("day 0 = change %s balance %s, want change 1000 balance 1000",
			points[0].Change, points[0].Balance)
	}
	for i := 1; i <= 30; i++ {
		if !points[i].Balance.Equal(dec(1000)) {
			t.Fatalf("day %d balance = %s, want 1000", i, points[i].Balance)
		}
		if !points[i].Change.IsZero() {
			t.Fatalf("day %d change = %s, want 0", i, points[i].Change)
		}
	}
	if points[31].Date.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("day 31 date = %s, want 2024-02-01", points[31].Date.Format("2006-01-02"))
	}
	if !points[31].Change.Equal(dec(1000)) || !points[31].Balance.Equal(dec(2000)) {
		t.Fatalf("day 31 = change %s balance %s, want change 1000 balance 2000",
			points[31].Change, points[31].Balance)
	}
}

func TestProject_OneTimeExpenseMidHorizon(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Expense, 500, "2024-01-15", model.RecurNone),
	}

	points := ProjectBaseline(txs, mustDate(t, "2024-01-01"), 30)
	if len(points) != 31 {
		t.Fatalf("point count = %d, want 31", len(points))
	}

	for i := 0; i <= 13; i++ {
		if !points[i].Balance.IsZero() {
			t.Fatalf("day %d balance = %s, want 0", i, points[i].Balance)
		}
	}
	if !points[14].Change.Equal(dec(-500)) || !points[14].Balance.Equal(dec(-500)) {
		t.Fatalf("day 14 = change %s balance %s, want change -500 balance -500",
			points[14].Change, points[14].Balance)
	}
	for i := 15; i <= 30; i++ {
		if !points[i].Balance.Equal(dec(-500)) {
			t.Fatalf("day %d balance = %s, want -500", i, points[i].Balance)
		}
	}
}

func TestProject_StartingBalanceFromHistory(t *testing.T) {
	// Weekly income anchored well before the reference date: four past
	// occurrences (Jan 1, 8, 15, 22) land in the starting balance, the
	// fifth (Jan 29) lands on day 0.
	txs := []model.Transaction{
		tx(t, model.Income, 100, "2024-01-01", model.RecurWeekly),
	}

	points := ProjectBaseline(txs, mustDate(t, "2024-01-29"), 0)
	if len(points) != 1 {
		t.Fatalf("point count = %d, want 1 for horizon 0", len(points))
	}
	if !points[0].Change.Equal(dec(100)) {
		t.Fatalf("day 0 change = %s, want 100", points[0].Change)
	}
	if !points[0].Balance.Equal(dec(500)) {
		t.Fatalf("day 0 balance = %s, want 500", points[0].Balance)
	}
}

func TestProject_SumInvariant(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 2500, "2024-01-01", model.RecurMonthly),
		tx(t, model.Expense, 80, "2024-01-03", model.RecurWeekly),
		tx(t, model.Expense, 1200, "2023-11-01", model.RecurMonthly),
		tx(t, model.Income, 300, "2024-02-14", model.RecurNone),
	}

	points := Project(txs, mustDate(t, "2024-02-01"), 60, dec(1), dec(1))

	starting := points[0].Balance.Sub(points[0].Change)
	running := starting
	for i, p := range points {
		running = running.Add(p.Change)
		if !p.Balance.Equal(running) {
			t.Fatalf("day %d balance = %s, want starting + cumulative change = %s", i, p.Balance, running)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 2500, "2023-06-15", model.RecurMonthly),
		tx(t, model.Expense, 45, "2024-01-02", model.RecurBiweekly),
	}

	a := Project(txs, mustDate(t, "2024-03-01"), 90, dec(2), dec(1))
	b := Project(txs, mustDate(t, "2024-03-01"), 90, dec(2), dec(1))

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) || !a[i].Balance.Equal(b[i].Balance) || !a[i].Change.Equal(b[i].Change) {
			t.Fatalf("point %d differs between identical runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestProject_MultipliersScaleByType(t *testing.T) {
	txs := []model.Transaction{
		tx(t, model.Income, 1000, "2024-01-01", model.RecurNone),
		tx(t, model.Expense, 400, "2024-01-01", model.RecurNone),
	}

	doubledIncome := Project(txs, mustDate(t, "2024-01-01"), 0, dec(2), dec(1))
	if !doubledIncome[0].Balance.Equal(dec(1600)) {
		t.Fatalf("balance with doubled income = %s, want 1600", doubledIncome[0].Balance)
	}

	halvedExpense := Project(txs, mustDate(t, "2024-01-01"), 0, dec(1), decimal.NewFromFloat(0.5))
	if !halvedExpense[0].Balance.Equal(dec(800)) {
		t.Fatalf("balance with halved expenses = %s, want 800", halvedExpense[0].Balance)
	}
}

func TestProject_EmptyTransactionsFlatZero(t *testing.T) {
	points := ProjectBaseline(nil, mustDate(t, "2024-01-01"), 10)
	if len(points) != 11 {
		t.Fatalf("point count = %d, want 11", len(points))
	}
	for i, p := range points {
		if !p.Balance.IsZero() || !p.Change.IsZero() {
			t.Fatalf("day %d = balance %s change %s, want zeros", i, p.Balance, p.Change)
		}
	}
}
