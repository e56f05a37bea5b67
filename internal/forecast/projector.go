package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

const dayKeyFormat = "2006-01-02"

// Project computes the full forecast for one set of assumptions: the starting
// balance as of the reference date, then one point per day through the
// horizon. The result has horizonDays+1 points with index 0 on referenceDate.
//
// Occurrences strictly before the reference date feed the starting balance;
// the reference date's own occurrences appear once, as change on day 0.
// A non-positive horizon yields the single day-0 point.
func Project(
	txs []model.Transaction,
	referenceDate time.Time,
	horizonDays int,
	incomeMult, expenseMult decimal.Decimal,
) []model.ForecastPoint {
	ref := Day(referenceDate)
	if horizonDays < 0 {
		horizonDays = 0
	}
	windowEnd := ref.AddDate(0, 0, horizonDays)

	// Pre-expand every transaction once into a date-keyed change map covering
	// the whole window. Cost scales with occurrences, not with transactions
	// times horizon.
	changes := make(map[string]decimal.Decimal)
	balance := decimal.Zero

	for _, tx := range txs {
		scaled := scaledAmount(tx, incomeMult, expenseMult)

		// Everything from the anchor up to (not including) the reference
		// date is history and folds into the starting balance. Nothing can
		// precede the anchor, so the window is exact with no lookback guess.
		past := len(Occurrences(tx, Day(tx.Date), ref.AddDate(0, 0, -1)))
		if past > 0 {
			balance = balance.Add(scaled.Mul(decimal.NewFromInt(int64(past))))
		}

		for _, date := range Occurrences(tx, ref, windowEnd) {
			key := date.Format(dayKeyFormat)
			changes[key] = changes[key].Add(scaled)
		}
	}

	points := make([]model.ForecastPoint, 0, horizonDays+1)
	for i := 0; i <= horizonDays; i++ {
		day := ref.AddDate(0, 0, i)
		change := changes[day.Format(dayKeyFormat)]
		balance = balance.Add(change)
		points = append(points, model.ForecastPoint{
			Date:    day,
			Balance: balance,
			Change:  change,
		})
	}
	return points
}

// ProjectBaseline is Project with both multipliers at 1.0.
func ProjectBaseline(txs []model.Transaction, referenceDate time.Time, horizonDays int) []model.ForecastPoint {
	one := decimal.NewFromInt(1)
	return Project(txs, referenceDate, horizonDays, one, one)
}

func scaledAmount(tx model.Transaction, incomeMult, expenseMult decimal.Decimal) decimal.Decimal {
	if tx.Type == model.Expense {
		return tx.Amount.Mul(expenseMult).Neg()
	}
	return tx.Amount.Mul(incomeMult)
}
