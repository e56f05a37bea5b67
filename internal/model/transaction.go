// Package model defines domain types for flowcast transactions and forecasts.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Recurrence is the repeat cadence of a transaction.
type Recurrence string

const (
	RecurNone     Recurrence = "none"
	RecurDaily    Recurrence = "daily"
	RecurWeekly   Recurrence = "weekly"
	RecurBiweekly Recurrence = "biweekly"
	RecurMonthly  Recurrence = "monthly"
	RecurYearly   Recurrence = "yearly"
)

// Recurrences lists all cadences in display order.
var Recurrences = []Recurrence{
	RecurNone, RecurDaily, RecurWeekly, RecurBiweekly, RecurMonthly, RecurYearly,
}

// Valid reports whether r is a known cadence.
func (r Recurrence) Valid() bool {
	for _, known := range Recurrences {
		if r == known {
			return true
		}
	}
	return false
}

// Transaction is one income or expense entry. Amount is always a positive
// magnitude; the sign is derived from Type. Date is the anchor (first
// occurrence) and RecurrenceEnd, when set, is the last date an occurrence
// may fall on.
type Transaction struct {
	ID            int64
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	Category      string
	Date          time.Time
	Recurrence    Recurrence
	RecurrenceEnd *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Signed returns Amount with the sign implied by Type.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Category is a user-facing grouping label for transactions. The forecasting
// engine never reads it.
type Category struct {
	ID   int64
	Name string
	Type TransactionType
}
