package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.General.DefaultHorizonDays = 60
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Scenarios = []ScenarioConfig{
		{Name: "Raise", IncomeMultiplier: 1.2, ExpenseMultiplier: 1},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("config file not created")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.General.Currency != "€" {
		t.Errorf("Currency = %q, want €", loaded.General.Currency)
	}
	if loaded.General.DefaultHorizonDays != 60 {
		t.Errorf("DefaultHorizonDays = %d, want 60", loaded.General.DefaultHorizonDays)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", loaded.Appearance.Theme)
	}
	if len(loaded.Scenarios) != 1 || loaded.Scenarios[0].Name != "Raise" {
		t.Errorf("Scenarios = %+v, want one preset named Raise", loaded.Scenarios)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.DefaultHorizonDays != 30 {
		t.Errorf("DefaultHorizonDays = %d, want 30", cfg.General.DefaultHorizonDays)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestScenarioPresets(t *testing.T) {
	cfg := Config{
		Scenarios: []ScenarioConfig{
			{Name: "Optimistic", IncomeMultiplier: 1.2, ExpenseMultiplier: 0.9},
			{Name: "Broken", IncomeMultiplier: -2, ExpenseMultiplier: 0},
		},
	}

	presets := ScenarioPresets(cfg)
	if len(presets) != 2 {
		t.Fatalf("len(presets) = %d, want 2", len(presets))
	}

	if presets[0].ID != 1 || presets[1].ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", presets[0].ID, presets[1].ID)
	}
	if !presets[0].IncomeMultiplier.Equal(decimal.NewFromFloat(1.2)) {
		t.Errorf("IncomeMultiplier = %v, want 1.2", presets[0].IncomeMultiplier)
	}

	// Non-positive multipliers fall back to neutral
	one := decimal.NewFromInt(1)
	if !presets[1].IncomeMultiplier.Equal(one) || !presets[1].ExpenseMultiplier.Equal(one) {
		t.Errorf("invalid multipliers not coerced to 1.0: %+v", presets[1])
	}
}
