package model

import "github.com/shopspring/decimal"

// Scenario is a named pair of multipliers applied uniformly to income and
// expense magnitudes. It never alters dates or recurrence rules. Scenarios
// are session-scoped inputs, not stored entities.
type Scenario struct {
	ID                int
	Name              string
	IncomeMultiplier  decimal.Decimal
	ExpenseMultiplier decimal.Decimal
}

// Baseline returns the implicit scenario with both multipliers at 1.0.
func Baseline() Scenario {
	return Scenario{
		Name:              "Baseline",
		IncomeMultiplier:  decimal.NewFromInt(1),
		ExpenseMultiplier: decimal.NewFromInt(1),
	}
}

// IsBaseline reports whether both multipliers equal 1.0.
func (s Scenario) IsBaseline() bool {
	one := decimal.NewFromInt(1)
	return s.IncomeMultiplier.Equal(one) && s.ExpenseMultiplier.Equal(one)
}

// ScenarioResult pairs a scenario with its computed forecast.
type ScenarioResult struct {
	Scenario Scenario
	Forecast []ForecastPoint
}

// ScenarioSummary holds the comparison figures for one scenario.
type ScenarioSummary struct {
	Scenario Scenario
	Final    decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
}
