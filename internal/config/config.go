// Package config loads and saves flowcast configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"flowcast/internal/model"
)

// Config holds all flowcast configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
	Scenarios  []ScenarioConfig `toml:"scenarios,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultHorizonDays int    `toml:"default_horizon_days"`
	Currency           string `toml:"currency"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ScenarioConfig is a saved scenario preset usable from the scenarios
// command and the dashboard. Multipliers are plain floats in the file and
// converted to decimals at the engine boundary.
type ScenarioConfig struct {
	Name              string  `toml:"name"`
	IncomeMultiplier  float64 `toml:"income_multiplier"`
	ExpenseMultiplier float64 `toml:"expense_multiplier"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultHorizonDays: 30,
			Currency:           "$",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowcast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flowcast")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.DefaultHorizonDays <= 0 {
		cfg.General.DefaultHorizonDays = 30
	}
	if cfg.General.Currency == "" {
		cfg.General.Currency = "$"
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// ScenarioPresets converts the configured presets into engine scenarios,
// assigning sequential IDs starting at 1. Presets with non-positive
// multipliers fall back to 1.0.
func ScenarioPresets(cfg Config) []model.Scenario {
	scenarios := make([]model.Scenario, 0, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		income := sc.IncomeMultiplier
		if income <= 0 {
			income = 1
		}
		expense := sc.ExpenseMultiplier
		if expense <= 0 {
			expense = 1
		}
		scenarios = append(scenarios, model.Scenario{
			ID:                i + 1,
			Name:              sc.Name,
			IncomeMultiplier:  decimal.NewFromFloat(income),
			ExpenseMultiplier: decimal.NewFromFloat(expense),
		})
	}
	return scenarios
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
