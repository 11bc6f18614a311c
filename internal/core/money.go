// Package core holds the domain model and the aggregation engine: transaction
// and category types, the period-to-date-range resolver, and the pure summary
// computation the dashboard consumes.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered amount string to a positive decimal
// magnitude. It accepts both dot (12.34) and comma (12,34) separators.
// Returns ErrInvalidAmount for malformed, negative, or zero values.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// The sign is carried by the transaction type, never typed in.
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// SignedAmount applies the sign a transaction type encodes: expenses become
// negative magnitudes, income stays positive.
func SignedAmount(t TransactionType, magnitude decimal.Decimal) decimal.Decimal {
	if t == Expense {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}
