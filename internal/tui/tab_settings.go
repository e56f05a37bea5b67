package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flowcast/internal/config"
	"flowcast/internal/store"
	"flowcast/internal/tui/theme"
)

func (a App) renderSettingsTab(_ int) string {
	t := theme.Active

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)

	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(sectionStyle.Render("Theme"))
	b.WriteString("\n")
	for i, th := range theme.All {
		marker := "  "
		if th.Name == t.Name {
			marker = "● "
		}
		line := marker + th.Name
		if i == a.settingsCursor {
			b.WriteString("  " + selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + valueStyle.Render(line) + "\n")
		}
	}
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("[j/k] select  [Enter] apply"))
	b.WriteString("\n\n  ")

	b.WriteString(sectionStyle.Render("Configuration"))
	b.WriteString("\n")

	dbPath := a.cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = store.DefaultPath()
	}

	rows := []struct{ label, value string }{
		{"Config file", config.ConfigPath()},
		{"Database", dbPath},
		{"Currency", a.cfg.General.Currency},
		{"Default horizon", fmt.Sprintf("%d days", a.cfg.General.DefaultHorizonDays)},
		{"Active horizon", fmt.Sprintf("%d days  ([+/-] adjust)", a.horizon)},
		{"Scenario presets", fmt.Sprintf("%d", len(a.cfg.Scenarios))},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "    %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-17s", row.label)),
			valueStyle.Render(row.value))
	}

	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render("Edit presets and defaults in the config file, then press [r] to reload."))

	return b.String()
}
