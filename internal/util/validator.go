package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.New(1, 7) // 10,000,000

// ValidateAmount checks that a transaction amount is positive and below the cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidatePercent checks a charges percentage is within 0-100.
func ValidatePercent(p decimal.Decimal) error {
	if p.Sign() < 0 || p.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("percent out of range, got %s", p)
	}
	return nil
}

// ValidateDate checks a date string is YYYY-MM-DD.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateDateRange checks both bounds parse and end is not before start.
// Empty bounds are allowed.
func ValidateDateRange(start, end string) error {
	if start != "" {
		if err := ValidateDate(start); err != nil {
			return err
		}
	}
	if end != "" {
		if err := ValidateDate(end); err != nil {
			return err
		}
	}
	if start != "" && end != "" && end < start {
		return fmt.Errorf("end date %s before start date %s", end, start)
	}
	return nil
}

// ValidateName checks a display name is present and of sane length.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty")
	}
	if len(name) > 128 {
		return fmt.Errorf("name too long, max 128 characters")
	}
	return nil
}
