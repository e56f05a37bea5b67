// Package tui provides the interactive Bubble Tea dashboard for flowcast.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"flowcast/internal/config"
	"flowcast/internal/forecast"
	"flowcast/internal/model"
	"flowcast/internal/store"
	"flowcast/internal/tui/components"
	"flowcast/internal/tui/theme"
)

// TransactionsLoadedMsg is sent when the store read finishes.
type TransactionsLoadedMsg struct {
	Transactions []model.Transaction
	Err          error
}

// ProjectionMsg carries a finished projection. Gen ties it to the request
// that started it; stale generations are dropped.
type ProjectionMsg struct {
	Gen       int
	Points    []model.ForecastPoint
	Summaries []model.ScenarioSummary
	Results   map[int]model.ScenarioResult
}

// MutationDoneMsg is sent after a create/update/delete completes.
type MutationDoneMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	db  *store.Store
	cfg config.Config

	// Data
	txs     []model.Transaction
	loaded  bool
	loadErr error

	// Projection state. gen increments on every horizon or data change so
	// that only the most recent projection result is applied.
	gen       int
	horizon   int
	points    []model.ForecastPoint
	summaries []model.ScenarioSummary
	results   map[int]model.ScenarioResult

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Transactions tab
	cursor int

	// Transaction entry form
	form     *huh.Form
	formVals *TransactionFormValues
	editID   int64 // 0 when adding

	// Delete confirmation
	confirmDelete bool

	// Settings tab
	settingsCursor int

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5

	minHorizonDays = 7
	maxHorizonDays = 365
	horizonStep    = 7

	maxScenarios = 5
)

// NewApp creates a new dashboard model.
func NewApp(db *store.Store, cfg config.Config, horizonDays int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		db:      db,
		cfg:     cfg,
		horizon: horizonDays,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadTransactionsCmd(a.db),
		a.spinner.Tick,
	)
}

// scenarios returns the configured presets capped at the dashboard limit.
func (a App) scenarios() []model.Scenario {
	presets := config.ScenarioPresets(a.cfg)
	if len(presets) > maxScenarios {
		presets = presets[:maxScenarios]
	}
	return presets
}

// reproject bumps the generation and starts a fresh projection.
func (a *App) reproject() tea.Cmd {
	a.gen++
	return projectCmd(a.gen, a.txs, a.horizon, a.scenarios())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case TransactionsLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.txs = msg.Transactions
		}
		if a.cursor >= len(a.txs) {
			a.cursor = len(a.txs) - 1
		}
		if a.cursor < 0 {
			a.cursor = 0
		}
		return a, a.reproject()

	case ProjectionMsg:
		if msg.Gen != a.gen {
			// A newer projection is already in flight.
			return a, nil
		}
		a.points = msg.Points
		a.summaries = msg.Summaries
		a.results = msg.Results
		return a, nil

	case MutationDoneMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, nil
		}
		return a, loadTransactionsCmd(a.db)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the entry form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// Entry form intercepts all keys while open
	if a.form != nil {
		return a.updateForm(msg)
	}

	// Pending delete confirmation
	if a.confirmDelete {
		switch key {
		case "y", "Y":
			a.confirmDelete = false
			if tx, ok := a.selectedTransaction(); ok {
				return a, deleteTransactionCmd(a.db, tx.ID)
			}
			return a, nil
		default:
			a.confirmDelete = false
			return a, nil
		}
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Horizon adjustment triggers a reprojection from any tab.
	switch key {
	case "+", "=":
		if a.horizon+horizonStep <= maxHorizonDays {
			a.horizon += horizonStep
			return a, a.reproject()
		}
		return a, nil
	case "-", "_":
		if a.horizon-horizonStep >= minHorizonDays {
			a.horizon -= horizonStep
			return a, a.reproject()
		}
		return a, nil
	}

	// Transactions tab bindings
	if a.activeTab == 1 {
		switch key {
		case "j", "down":
			if a.cursor < len(a.txs)-1 {
				a.cursor++
			}
			return a, nil
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil
		case "g":
			a.cursor = 0
			return a, nil
		case "G":
			if len(a.txs) > 0 {
				a.cursor = len(a.txs) - 1
			}
			return a, nil
		case "e", "enter":
			if tx, ok := a.selectedTransaction(); ok {
				return a.openForm(FormValuesFromTransaction(tx), tx.ID)
			}
			return a, nil
		case "d", "backspace":
			if _, ok := a.selectedTransaction(); ok {
				a.confirmDelete = true
			}
			return a, nil
		}
	}

	// Settings tab bindings
	if a.activeTab == 3 {
		switch key {
		case "j", "down":
			if a.settingsCursor < len(theme.All)-1 {
				a.settingsCursor++
			}
			return a, nil
		case "k", "up":
			if a.settingsCursor > 0 {
				a.settingsCursor--
			}
			return a, nil
		case "enter":
			selected := theme.All[a.settingsCursor]
			theme.SetActive(selected.Name)
			a.cfg.Appearance.Theme = selected.Name
			_ = config.Save(a.cfg)
			return a, nil
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		return a.openForm(NewFormValues(), 0)
	case "r":
		// Reload config presets alongside the data.
		if cfg, err := config.Load(); err == nil {
			a.cfg = cfg
		}
		return a, loadTransactionsCmd(a.db)
	case "f":
		a.activeTab = 0
	case "t":
		a.activeTab = 1
	case "s":
		a.activeTab = 2
	case "x":
		a.activeTab = 3
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

func (a App) selectedTransaction() (model.Transaction, bool) {
	if a.cursor < 0 || a.cursor >= len(a.txs) {
		return model.Transaction{}, false
	}
	return a.txs[a.cursor], true
}

func (a App) openForm(vals *TransactionFormValues, editID int64) (tea.Model, tea.Cmd) {
	categories, _ := a.db.ListCategories(context.Background())
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	a.formVals = vals
	a.editID = editID
	a.form = NewTransactionForm(vals, names)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		vals := a.formVals
		editID := a.editID
		a.form = nil
		a.formVals = nil
		a.editID = 0

		tx, err := vals.Transaction()
		if err != nil {
			a.loadErr = err
			return a, nil
		}
		if editID != 0 {
			tx.ID = editID
			return a, updateTransactionCmd(a.db, tx)
		}
		return a, createTransactionCmd(a.db, tx)
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formVals = nil
		a.editID = 0
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  flowcast needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ flowcast"))
	b.WriteString(subtitleStyle.Render(" · Cash Flow Forecast"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading transactions..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"f t s x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add transaction"},
		{"e / Enter", "Edit selected"},
		{"d", "Delete selected"},
		{"+ -", "Grow / shrink horizon"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)

	hint := ""
	if a.confirmDelete {
		if tx, ok := a.selectedTransaction(); ok {
			hint = fmt.Sprintf("Delete %q? [y]es / any key cancels", tx.Description)
		}
	} else if a.loadErr != nil {
		hint = "Error: " + truncStr(a.loadErr.Error(), w-20)
	}
	statusBar := components.RenderStatusBar(w, a.horizon, hint)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderForecastTab(cw, contentH)
	case 1:
		content = a.renderTransactionsTab(cw, contentH)
	case 2:
		content = a.renderScenariosTab(cw)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ────────────────────────────────────────────────────

func loadTransactionsCmd(db *store.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		txs, err := db.GetAll(ctx)
		return TransactionsLoadedMsg{Transactions: txs, Err: err}
	}
}

// projectCmd runs the projection off the UI goroutine and tags the result
// with the generation that requested it.
func projectCmd(gen int, txs []model.Transaction, horizonDays int, scenarios []model.Scenario) tea.Cmd {
	return func() tea.Msg {
		ref := forecast.Day(time.Now())
		points := forecast.ProjectBaseline(txs, ref, horizonDays)
		results := forecast.RunScenarios(scenarios, txs, ref, horizonDays)
		summaries := forecast.Summarize(results)
		return ProjectionMsg{
			Gen:       gen,
			Points:    points,
			Summaries: summaries,
			Results:   results,
		}
	}
}

func createTransactionCmd(db *store.Store, tx model.Transaction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return MutationDoneMsg{Err: db.Create(ctx, &tx)}
	}
}

func updateTransactionCmd(db *store.Store, tx model.Transaction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return MutationDoneMsg{Err: db.Update(ctx, tx)}
	}
}

func deleteTransactionCmd(db *store.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return MutationDoneMsg{Err: db.Delete(ctx, id)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
