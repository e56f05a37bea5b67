package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

func TestStaleProjectionDropped(t *testing.T) {
	a := App{gen: 3, loaded: true}

	stalePoints := []model.ForecastPoint{{Balance: decimal.NewFromInt(999)}}
	updated, _ := a.Update(ProjectionMsg{Gen: 2, Points: stalePoints})
	a = updated.(App)

	if len(a.points) != 0 {
		t.Fatal("stale projection was applied")
	}

	currentPoints := []model.ForecastPoint{{Balance: decimal.NewFromInt(100)}}
	updated, _ = a.Update(ProjectionMsg{Gen: 3, Points: currentPoints})
	a = updated.(App)

	if len(a.points) != 1 || !a.points[0].Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("current projection not applied: %+v", a.points)
	}
}

func TestHorizonAdjustBumpsGeneration(t *testing.T) {
	a := App{gen: 1, loaded: true, horizon: 30}

	updated, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	a = updated.(App)

	if a.horizon != 30+horizonStep {
		t.Fatalf("horizon = %d, want %d", a.horizon, 30+horizonStep)
	}
	if a.gen != 2 {
		t.Fatalf("gen = %d, want 2", a.gen)
	}
	if cmd == nil {
		t.Fatal("expected a reprojection command")
	}
}

func TestHorizonBounds(t *testing.T) {
	a := App{gen: 1, loaded: true, horizon: maxHorizonDays}

	updated, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	a = updated.(App)

	if a.horizon != maxHorizonDays {
		t.Fatalf("horizon grew past max: %d", a.horizon)
	}
	if cmd != nil {
		t.Fatal("no reprojection expected at the max horizon")
	}

	a.horizon = minHorizonDays
	updated, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	a = updated.(App)

	if a.horizon != minHorizonDays {
		t.Fatalf("horizon shrank past min: %d", a.horizon)
	}
	if cmd != nil {
		t.Fatal("no reprojection expected at the min horizon")
	}
}

func TestTransactionFormRoundTrip(t *testing.T) {
	end := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	original := model.Transaction{
		ID:            42,
		Type:          model.Income,
		Amount:        decimal.RequireFromString("2500.50"),
		Description:   "Salary",
		Category:      "Income",
		Date:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Recurrence:    model.RecurMonthly,
		RecurrenceEnd: &end,
	}

	vals := FormValuesFromTransaction(original)
	got, err := vals.Transaction()
	if err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}

	if got.Type != original.Type {
		t.Errorf("Type = %v, want %v", got.Type, original.Type)
	}
	if !got.Amount.Equal(original.Amount) {
		t.Errorf("Amount = %v, want %v", got.Amount, original.Amount)
	}
	if !got.Date.Equal(original.Date) {
		t.Errorf("Date = %v, want %v", got.Date, original.Date)
	}
	if got.Recurrence != original.Recurrence {
		t.Errorf("Recurrence = %v, want %v", got.Recurrence, original.Recurrence)
	}
	if got.RecurrenceEnd == nil || !got.RecurrenceEnd.Equal(end) {
		t.Errorf("RecurrenceEnd = %v, want %v", got.RecurrenceEnd, end)
	}
}

func TestFormValuesRejectBadInput(t *testing.T) {
	vals := &TransactionFormValues{
		Type:   string(model.Expense),
		Amount: "not-a-number",
		Date:   "2026-09-01",
	}
	if _, err := vals.Transaction(); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}

	vals = &TransactionFormValues{
		Type:   string(model.Expense),
		Amount: "10",
		Date:   "September 1st",
	}
	if _, err := vals.Transaction(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
