package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1,234.50"},
		{"-1234.5", "-$1,234.50"},
		{"999", "$999.00"},
		{"1000000", "$1,000,000.00"},
		{"0.005", "$0.01"},
	}

	for _, tt := range tests {
		got := FormatMoney("$", dec(tt.amount))
		if got != tt.want {
			t.Errorf("FormatMoney($, %s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("$", dec("250")); got != "+$250.00" {
		t.Errorf("FormatSignedMoney(250) = %q, want %q", got, "+$250.00")
	}
	if got := FormatSignedMoney("$", dec("-75.5")); got != "-$75.50" {
		t.Errorf("FormatSignedMoney(-75.5) = %q, want %q", got, "-$75.50")
	}
	if got := FormatSignedMoney("$", dec("0")); got != "+$0.00" {
		t.Errorf("FormatSignedMoney(0) = %q, want %q", got, "+$0.00")
	}
}

func TestFormatCompactMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"500", "$500"},
		{"1500", "$1.5K"},
		{"25000", "$25K"},
		{"2500000", "$2.5M"},
		{"-1500", "$-1.5K"},
	}

	for _, tt := range tests {
		got := FormatCompactMoney("$", dec(tt.amount))
		if got != tt.want {
			t.Errorf("FormatCompactMoney(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber(1234567) = %q, want %q", got, "1,234,567")
	}
	if got := FormatNumber(-42); got != "-42" {
		t.Errorf("FormatNumber(-42) = %q, want %q", got, "-42")
	}
	if got := FormatNumber(999); got != "999" {
		t.Errorf("FormatNumber(999) = %q, want %q", got, "999")
	}
}

func TestFormatMultiplier(t *testing.T) {
	tests := []struct {
		m    string
		want string
	}{
		{"1", "±0%"},
		{"1.2", "+20%"},
		{"0.8", "-20%"},
		{"1.05", "+5%"},
	}

	for _, tt := range tests {
		got := FormatMultiplier(dec(tt.m))
		if got != tt.want {
			t.Errorf("FormatMultiplier(%s) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestRenderBalanceBar(t *testing.T) {
	if got := RenderBalanceBar(0, 0, 20); got != "" {
		t.Errorf("RenderBalanceBar with zero scale = %q, want empty", got)
	}
	full := RenderBalanceBar(100, 100, 10)
	half := RenderBalanceBar(50, 100, 10)
	if len(full) <= len(half) {
		t.Errorf("full bar should be longer than half bar: %d <= %d", len(full), len(half))
	}
}
