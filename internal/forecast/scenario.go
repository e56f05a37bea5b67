package forecast

import (
	"sync"
	"time"

	"flowcast/internal/model"
)

// RunScenarios projects the transaction set once per scenario and returns the
// results keyed by scenario ID. An empty scenario list substitutes the
// implicit baseline (multipliers 1.0) so a forecast is always produced.
//
// Scenarios are computed in parallel; each projection is independent and the
// evaluation order never affects any scenario's numbers. The engine imposes
// no limit on scenario count — presentation surfaces may.
func RunScenarios(
	scenarios []model.Scenario,
	txs []model.Transaction,
	referenceDate time.Time,
	horizonDays int,
) map[int]model.ScenarioResult {
	if len(scenarios) == 0 {
		scenarios = []model.Scenario{model.Baseline()}
	}

	results := make([]model.ScenarioResult, len(scenarios))
	var wg sync.WaitGroup
	wg.Add(len(scenarios))
	for i, sc := range scenarios {
		go func(i int, sc model.Scenario) {
			defer wg.Done()
			results[i] = model.ScenarioResult{
				Scenario: sc,
				Forecast: Project(txs, referenceDate, horizonDays, sc.IncomeMultiplier, sc.ExpenseMultiplier),
			}
		}(i, sc)
	}
	wg.Wait()

	byID := make(map[int]model.ScenarioResult, len(results))
	for _, r := range results {
		byID[r.Scenario.ID] = r
	}
	return byID
}
