package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	gainStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	lossStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Gain renders money text in the gain color, Loss in the loss color.
func Gain(s string) string { return gainStyle.Render(s) }
func Loss(s string) string { return lossStyle.Render(s) }

// Table represents a bordered text table for CLI output. Columns listed in
// RightAlign are right-aligned, which money columns want.
type Table struct {
	Title      string
	Headers    []string
	Rows       [][]string
	RightAlign []int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row whose
// first cell is "---" becomes a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	rightAlign := make(map[int]bool, len(t.RightAlign))
	for _, i := range t.RightAlign {
		rightAlign[i] = true
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeCells := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			var padded string
			if rightAlign[i] {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			}
			b.WriteString(style.Render(padded))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	writeBorder("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		writeCells(t.Headers, headerStyle)
		writeBorder("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			writeBorder("├", "┼", "┤")
			continue
		}
		writeCells(row, lipgloss.NewStyle().Foreground(ColorText))
	}
	writeBorder("╰", "┴", "╯")

	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) > 0 && row[0] == "---"
}

// RenderBalanceBar renders a signed horizontal bar: positive balances extend
// right of the axis in the gain color, negative ones in the loss color.
// scale is the largest absolute balance in the series.
func RenderBalanceBar(value, scale float64, maxWidth int) string {
	if scale <= 0 || maxWidth <= 0 {
		return ""
	}
	abs := value
	if abs < 0 {
		abs = -abs
	}
	barLen := int(abs / scale * float64(maxWidth))
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := strings.Repeat("█", barLen)
	if value < 0 {
		return lossStyle.Render(bar)
	}
	return gainStyle.Render(bar)
}
