package models

import "github.com/shopspring/decimal"

// MemberBalance represents the balance information for one member.
type MemberBalance struct {
	Key  string
	Name string
	Net  decimal.Decimal // Positive = owed money, Negative = owes money
	Paid decimal.Decimal // Total amount paid across all expenses
	Owed decimal.Decimal // Total of this member's shares across all expenses
}

// Balances is a balance snapshot ordered by member registration.
// That order is the stable enumeration order used by settlement.
type Balances []MemberBalance

// Of returns the net balance for a member key.
func (b Balances) Of(key string) (decimal.Decimal, bool) {
	for _, mb := range b {
		if mb.Key == key {
			return mb.Net, true
		}
	}
	return decimal.Zero, false
}

// Sum returns the total of all net balances. Zero up to split rounding.
func (b Balances) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, mb := range b {
		total = total.Add(mb.Net)
	}
	return total
}

// Map returns the snapshot keyed by member key.
func (b Balances) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(b))
	for _, mb := range b {
		m[mb.Key] = mb.Net
	}
	return m
}
