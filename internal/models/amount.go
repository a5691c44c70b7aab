package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// IsValidAmount reports whether s is a non-negative amount with at most two
// decimals, such as "1000" or "1000.50".
func IsValidAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// ParseAmount parses an operator-entered amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !IsValidAmount(s) {
		return decimal.Zero, fmt.Errorf("invalid amount '%s'", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	return d, nil
}

// AmountFromCents decodes a zero-padded cent field ("00000100050" is 1000.50).
// Non-numeric content decodes to zero.
func AmountFromCents(field string) decimal.Decimal {
	field = strings.TrimSpace(field)
	if field == "" {
		return decimal.Zero
	}
	cents, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Zero
	}
	return cents.Shift(-2)
}

// AmountText renders d with exactly two decimals, the form expected by the
// fixed-width amount encoder.
func AmountText(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// SumAmounts adds already validated amounts. Invalid entries count as zero.
func SumAmounts(amounts ...string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		d, err := ParseAmount(a)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return total
}
