package components

import (
	"fmt"
	"math"
	"strings"

	"flowcast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values. Negative values render
// as the lowest block.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := 0
		if v > 0 {
			idx = int(v / peak * float64(len(blocks)-1))
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BalanceChart renders a signed column chart of a balance series. The zero
// axis sits inside the chart when the series dips negative: columns above it
// render green, columns below render red. Series longer than the chart width
// are downsampled evenly.
func BalanceChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	maxVal, minVal := 0.0, 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	span := math.Max(maxVal, -minVal)
	if span == 0 {
		span = 1
	}

	if width < 15 || height < 4 {
		return Sparkline(values, t.Green)
	}

	tickStep := chartTickStep(span)
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	if ceiling == 0 {
		ceiling = tickStep
	}
	floor := 0.0
	if minVal < 0 {
		floor = -math.Ceil(-minVal/tickStep) * tickStep
	}

	// Split rows between the positive and negative regions in proportion
	// to their value spans. The zero axis gets its own row.
	total := ceiling - floor
	posRows := int(math.Round(float64(height) * ceiling / total))
	if posRows < 1 {
		posRows = 1
	}
	negRows := 0
	if floor < 0 {
		negRows = height - posRows
		if negRows < 1 {
			negRows = 1
		}
	}

	yLabelW := len(formatChartLabel(ceiling))
	if floor < 0 {
		if w := len(formatChartLabel(floor)); w > yLabelW {
			yLabelW = w
		}
	}
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// One column per point; downsample evenly when the series is wider
	// than the chart.
	n := len(values)
	if n > chartW {
		sampled := make([]float64, chartW)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, chartW)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (chartW - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = chartW
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	// Positive region, top to bottom.
	for row := posRows; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(posRows)
		rowBottom := ceiling * float64(row-1) / float64(posRows)

		label := ""
		if row == posRows {
			label = formatChartLabel(ceiling)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			switch {
			case v >= rowTop:
				b.WriteString(gainStyle.Render("█"))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(gainStyle.Render(string(blocks[idx])))
			default:
				b.WriteString(blankStyle.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	// Zero axis.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", n)))
	b.WriteString("\n")

	// Negative region, shallow to deep.
	for row := 1; row <= negRows; row++ {
		rowTop := floor * float64(row-1) / float64(negRows)
		rowBottom := floor * float64(row) / float64(negRows)

		label := ""
		if row == negRows {
			label = formatChartLabel(floor)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			switch {
			case v <= rowBottom:
				b.WriteString(lossStyle.Render("█"))
			case v < rowTop:
				// Partially filled cell; round to a full block when the
				// column covers at least half of it.
				if (rowTop-v)/(rowTop-rowBottom) >= 0.5 {
					b.WriteString(lossStyle.Render("█"))
				} else {
					b.WriteString(blankStyle.Render(" "))
				}
			default:
				b.WriteString(blankStyle.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	// X-axis labels, spaced to avoid collisions.
	if len(labels) == n && n > 0 {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = ' '
		}

		labelStep := 8

		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			lbl := labels[i]
			end := i + len(lbl)
			if i <= lastEnd || end > n {
				continue
			}
			copy(buf[i:end], lbl)
			lastEnd = end + 1
		}

		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%s%.0fM", neg, v/1e6)
		}
		return fmt.Sprintf("%s%.1fM", neg, v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%s%.0fk", neg, v/1e3)
		}
		return fmt.Sprintf("%s%.1fk", neg, v/1e3)
	case v >= 1:
		return fmt.Sprintf("%s%.0f", neg, v)
	default:
		return fmt.Sprintf("%s%.2f", neg, v)
	}
}
