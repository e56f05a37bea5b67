package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testTx(t *testing.T, date string) model.Transaction {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return model.Transaction{
		Type:        model.Income,
		Amount:      decimal.NewFromFloat(1234.56),
		Description: "Paycheck",
		Category:    "Salary",
		Date:        d,
		Recurrence:  model.RecurBiweekly,
	}
}

func TestStore_CreateAndGetAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tx := testTx(t, "2024-03-01")
	if err := s.Create(ctx, &tx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.ID == 0 {
		t.Fatal("create did not assign an ID")
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(all))
	}

	got := all[0]
	if !got.Amount.Equal(decimal.NewFromFloat(1234.56)) {
		t.Fatalf("amount = %s, want 1234.56", got.Amount)
	}
	if got.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("date = %s, want 2024-03-01", got.Date.Format("2006-01-02"))
	}
	if got.Recurrence != model.RecurBiweekly {
		t.Fatalf("recurrence = %s, want biweekly", got.Recurrence)
	}
	if got.RecurrenceEnd != nil {
		t.Fatalf("recurrence end = %v, want nil", got.RecurrenceEnd)
	}
}

func TestStore_GetAllOrderedByDate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2024-03-15", "2024-01-01", "2024-02-10"} {
		tx := testTx(t, date)
		if err := s.Create(ctx, &tx); err != nil {
			t.Fatalf("create %s: %v", date, err)
		}
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := []string{"2024-01-01", "2024-02-10", "2024-03-15"}
	for i, w := range want {
		if got := all[i].Date.Format("2006-01-02"); got != w {
			t.Fatalf("transaction[%d] date = %s, want %s", i, got, w)
		}
	}
}

func TestStore_UpdateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tx := testTx(t, "2024-03-01")
	if err := s.Create(ctx, &tx); err != nil {
		t.Fatalf("create: %v", err)
	}

	end, _ := time.Parse("2006-01-02", "2024-12-31")
	tx.Type = model.Expense
	tx.Amount = decimal.NewFromInt(75)
	tx.Recurrence = model.RecurMonthly
	tx.RecurrenceEnd = &end
	if err := s.Update(ctx, tx); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.GetByID(ctx, tx.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Type != model.Expense || !got.Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("updated transaction = %s %s, want expense 75", got.Type, got.Amount)
	}
	if got.RecurrenceEnd == nil || got.RecurrenceEnd.Format("2006-01-02") != "2024-12-31" {
		t.Fatalf("recurrence end = %v, want 2024-12-31", got.RecurrenceEnd)
	}
}

func TestStore_DeleteAndNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tx := testTx(t, "2024-03-01")
	if err := s.Create(ctx, &tx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := s.Delete(ctx, tx.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
	if _, err := s.GetByID(ctx, tx.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted error = %v, want ErrNotFound", err)
	}
}

func TestStore_ValidationRejectsBadRecords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	negative := testTx(t, "2024-03-01")
	negative.Amount = decimal.NewFromInt(-10)
	if err := s.Create(ctx, &negative); err == nil {
		t.Fatal("create accepted a negative amount")
	}

	badType := testTx(t, "2024-03-01")
	badType.Type = "transfer"
	if err := s.Create(ctx, &badType); err == nil {
		t.Fatal("create accepted an unknown type")
	}

	endBeforeDate := testTx(t, "2024-03-01")
	early, _ := time.Parse("2006-01-02", "2024-01-01")
	endBeforeDate.RecurrenceEnd = &early
	if err := s.Create(ctx, &endBeforeDate); err == nil {
		t.Fatal("create accepted recurrence end before the anchor date")
	}
}

func TestStore_SeedsDefaultCategories(t *testing.T) {
	s := openTestStore(t)

	cats, err := s.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != len(defaultCategories) {
		t.Fatalf("category count = %d, want %d", len(cats), len(defaultCategories))
	}
}
