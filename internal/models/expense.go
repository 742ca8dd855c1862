package models

import "github.com/shopspring/decimal"

// Expense represents one payment made by a member on behalf of a group of participants.
// Expenses are immutable once recorded.
type Expense struct {
	// ID is the unique identifier for the expense (UUIDv7, time-ordered).
	ID string

	// Seq is the 1-based creation order within the owning ledger.
	Seq int

	// Description is the trimmed, non-empty label (e.g., "Groceries").
	Description string

	// Amount is the total paid. Always strictly positive.
	Amount decimal.Decimal

	// PaidBy is the member key of the payer.
	PaidBy string

	// SplitWith is the list of member keys sharing the cost equally.
	// Order is preserved and duplicates are kept: a key listed twice
	// carries two shares.
	SplitWith []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

