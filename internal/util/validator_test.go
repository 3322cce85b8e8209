package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount_Positive(t *testing.T) {
	testCases := []string{"0.01", "1", "100.5", "9999999.99"}

	for _, s := range testCases {
		amount, _ := decimal.NewFromString(s)
		if err := ValidateAmount(amount); err != nil {
			t.Errorf("ValidateAmount(%s) error = %v, want nil", s, err)
		}
	}
}

func TestValidateAmount_ZeroOrNegative(t *testing.T) {
	testCases := []string{"0", "-0.01", "-100", "-9999.99"}

	for _, s := range testCases {
		amount, _ := decimal.NewFromString(s)
		if err := ValidateAmount(amount); err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", s)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(100000000)); err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

func TestValidatePercent(t *testing.T) {
	for _, s := range []string{"0", "0.5", "50", "100"} {
		p, _ := decimal.NewFromString(s)
		if err := ValidatePercent(p); err != nil {
			t.Errorf("ValidatePercent(%s) error = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"-1", "100.01", "150"} {
		p, _ := decimal.NewFromString(s)
		if err := ValidatePercent(p); err == nil {
			t.Errorf("ValidatePercent(%s) error = nil, want error", s)
		}
	}
}

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		if err := ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		if err := ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	if err := ValidateDateRange("2024-01-01", "2024-02-01"); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if err := ValidateDateRange("", ""); err != nil {
		t.Errorf("empty range rejected: %v", err)
	}
	if err := ValidateDateRange("2024-01-01", ""); err != nil {
		t.Errorf("open-ended range rejected: %v", err)
	}
	if err := ValidateDateRange("2024-02-01", "2024-01-01"); err == nil {
		t.Error("end before start accepted, want error")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Acme Bank"); err != nil {
		t.Errorf("ValidateName(Acme Bank) error = %v, want nil", err)
	}
	if err := ValidateName(""); err == nil {
		t.Error("ValidateName(\"\") error = nil, want error")
	}
	if err := ValidateName("   "); err == nil {
		t.Error("whitespace-only name accepted, want error")
	}
}
