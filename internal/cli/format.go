// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a decimal amount with a currency symbol, thousands
// separators, and two decimal places. Negative values keep the sign in front
// of the symbol: -$1,234.50.
func FormatMoney(currency string, amount decimal.Decimal) string {
	sign := ""
	abs := amount
	if amount.IsNegative() {
		sign = "-"
		abs = amount.Neg()
	}

	fixed := abs.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + currency + groupThousands(whole) + "." + frac
}

// FormatSignedMoney is FormatMoney with an explicit plus sign on
// non-negative values, for change columns.
func FormatSignedMoney(currency string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return FormatMoney(currency, amount)
	}
	return "+" + FormatMoney(currency, amount)
}

// FormatCompactMoney renders an amount with K/M suffixes for chart axes.
func FormatCompactMoney(currency string, amount decimal.Decimal) string {
	f, _ := amount.Float64()
	abs := f
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", currency, f/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%s%.0fK", currency, f/1_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s%.1fK", currency, f/1_000)
	default:
		return fmt.Sprintf("%s%.0f", currency, f)
	}
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatMultiplier renders a scenario multiplier as a percent delta:
// 1.0 -> "±0%", 1.2 -> "+20%", 0.8 -> "-20%".
func FormatMultiplier(m decimal.Decimal) string {
	one := decimal.NewFromInt(1)
	if m.Equal(one) {
		return "±0%"
	}
	pct := m.Sub(one).Mul(decimal.NewFromInt(100))
	if pct.IsNegative() {
		return pct.StringFixed(0) + "%"
	}
	return "+" + pct.StringFixed(0) + "%"
}
