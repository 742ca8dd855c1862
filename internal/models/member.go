package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Member represents one person taking part in shared expenses.
type Member struct {
	// Key is the canonical identity: the trimmed, lower-cased name.
	Key string

	// Name is the trimmed display name exactly as first entered.
	// Re-adding "ALICE" after "Alice" keeps "Alice".
	Name string

	// Balance is the member's net position after the last balance computation.
	// Positive = owed money, Negative = owes money.
	// Derived: reset and recomputed by every Ledger.ComputeBalances call.
	Balance decimal.Decimal
}

// NormalizeName returns the canonical member key for a raw name.
// The result is empty when name is blank.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
