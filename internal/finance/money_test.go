package finance

import (
	"testing"

	"github.com/koboapp/kobo/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain decimal", "1234.56", 1234.56},
		{"integer", "500", 500},
		{"leading space", " 42.00 ", 42},
		{"negative", "-10.25", -10.25},
		{"empty contributes zero", "", 0},
		{"garbage contributes zero", "abc", 0},
		{"partial number contributes zero", "12.3.4", 0},
		{"NaN contributes zero", "NaN", 0},
		{"Inf contributes zero", "+Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1.004, 1.00},
		{1.005, 1.01},
		{1.015, 1.02},
		{-1.005, -1.01},
		{0, 0},
		{226156.984, 226156.98},
	}

	for _, tt := range tests {
		if got := Round2(tt.input); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency domain.Currency
		want     string
	}{
		{"ngn small", 5, domain.CurrencyNGN, "₦5.00"},
		{"ngn grouped", 1550000, domain.CurrencyNGN, "₦1,550,000.00"},
		{"usd cents", 1234.5, domain.CurrencyUSD, "$1,234.50"},
		{"usd single cent digit", 0.05, domain.CurrencyUSD, "$0.05"},
		{"negative", -99.99, domain.CurrencyUSD, "-$99.99"},
		{"rounds to cent", 10.005, domain.CurrencyNGN, "₦10.01"},
		{"seven digits", 1234567.89, domain.CurrencyUSD, "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount, tt.currency); got != tt.want {
				t.Errorf("Format(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
