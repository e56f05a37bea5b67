package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"flowcast/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		for _, total := range []int{80, 100, 121} {
			widths := LayoutRow(total, n)
			if len(widths) != n {
				t.Fatalf("LayoutRow(%d, %d) returned %d widths", total, n, len(widths))
			}
			sum := 0
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
}

func TestBalanceChartHasZeroAxis(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{500, 250, -100, -300, 200}
	labels := []string{"1", "2", "3", "4", "5"}

	out := BalanceChart(values, labels, 40, 8)
	if out == "" {
		t.Fatal("BalanceChart returned empty output")
	}
	if !strings.Contains(out, "┼") {
		t.Error("chart output missing zero axis marker")
	}
	if !strings.Contains(out, "─") {
		t.Error("chart output missing axis line")
	}
}

func TestBalanceChartAllPositiveHasNoNegativeRegion(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{100, 200, 300}
	out := BalanceChart(values, []string{"a", "b", "c"}, 40, 8)

	// The zero axis should be the last chart row (no rows below it).
	lines := strings.Split(out, "\n")
	axisIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "┼") {
			axisIdx = i
		}
	}
	if axisIdx == -1 {
		t.Fatal("no zero axis found")
	}
	for _, line := range lines[axisIdx+1:] {
		if strings.Contains(line, "█") {
			t.Error("found bar content below the zero axis for an all-positive series")
		}
	}
}

func TestBalanceChartDownsamplesLongSeries(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := make([]float64, 365)
	labels := make([]string, 365)
	for i := range values {
		values[i] = float64(i)
		labels[i] = "x"
	}

	out := BalanceChart(values, labels, 60, 8)
	if out == "" {
		t.Fatal("BalanceChart returned empty output")
	}
	for _, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > 70 {
			t.Fatalf("chart line wider than requested width: %d", lipgloss.Width(line))
		}
	}
}

func TestSparklineLength(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{1, 5, 3, -2, 8}
	out := Sparkline(values, theme.Active.Green)
	if lipgloss.Width(out) != len(values) {
		t.Fatalf("sparkline width = %d, want %d", lipgloss.Width(out), len(values))
	}
}
