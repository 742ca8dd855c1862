package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExpenseInput holds the raw field values of an expense form.
type ExpenseInput struct {
	Description string
	Amount      string
	PaidBy      string
	// SplitWith is a comma-separated list of names, e.g. "Alice, Bob".
	SplitWith string
}

// ParseAmount parses a user-entered amount. Non-numeric, zero and negative
// values are rejected with a ValidationError.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, invalid("amount", "required")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid("amount", "must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, invalid("amount", "must be greater than zero")
	}
	return amount, nil
}

// SplitNames splits a comma-separated participant list, trimming each name and
// dropping blanks. Duplicates are kept.
func SplitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
