package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateFrequency(t *testing.T) {
	tests := []struct {
		name        string
		frequency   Frequency
		allowHourly bool
		expectError bool
	}{
		{"monthly is always valid", FrequencyMonthly, false, false},
		{"one-time is valid", FrequencyOneTime, false, false},
		{"hourly allowed for income", FrequencyHourly, true, false},
		{"hourly rejected elsewhere", FrequencyHourly, false, true},
		{"unknown frequency rejected", Frequency("fortnightly"), true, true},
		{"empty frequency rejected", Frequency(""), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrequency(tt.frequency, tt.allowHourly)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		expectError bool
	}{
		{"positive amount", decimal.NewFromFloat(250.50), false},
		{"zero amount allowed", decimal.Zero, false},
		{"negative amount rejected", decimal.NewFromInt(-1), true},
		{"amount over cap rejected", decimal.RequireFromString("1000000000001"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency(CurrencyNGN); err != nil {
		t.Errorf("NGN should be valid: %v", err)
	}
	if err := ValidateCurrency(CurrencyUSD); err != nil {
		t.Errorf("USD should be valid: %v", err)
	}
	if err := ValidateCurrency(Currency("GBP")); err == nil {
		t.Error("GBP is rates-view only, not a record currency")
	}
	if err := ValidateCurrency(Currency("")); err == nil {
		t.Error("empty currency should be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.ng"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("expected %q to be valid: %v", email, err)
		}
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Sup3rSecret"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePassword("short1A"); err == nil {
		t.Error("expected too-short password to fail")
	}
	if err := ValidatePassword("alllowercase1"); err == nil {
		t.Error("expected password without uppercase to fail")
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults (50, 0), got (%d, %d)", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("expected limit capped to 1000, got %d", limit)
	}
}
