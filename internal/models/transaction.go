package models

import "github.com/shopspring/decimal"

// Transaction represents one payment in a settle-up plan.
// Transactions are computed, never stored.
type Transaction struct {
	// From is the member key of the debtor making the payment.
	From string

	// To is the member key of the creditor receiving it.
	To string

	// FromName and ToName are the display names at settlement time.
	FromName string
	ToName   string

	// Amount is the payment amount. Always at least calculator.DustThreshold.
	Amount decimal.Decimal
}
