package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastPoint is the projected state at the end of one day. Change is the
// signed sum of occurrences landing exactly on Date; Balance is the running
// total through Date. Points are derived, never persisted.
type ForecastPoint struct {
	Date    time.Time
	Balance decimal.Decimal
	Change  decimal.Decimal
}

// MonthlyTotals holds exact income and expense totals for one calendar month,
// derived from expanded occurrences rather than per-cadence approximations.
type MonthlyTotals struct {
	Month    time.Month
	Year     int
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns income minus expenses for the month.
func (m MonthlyTotals) Net() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}
