// Package render formats ledger output as plain text lines.
package render

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

const (
	SettledUpText  = "Everyone is settled up!"
	NoExpensesText = "No expenses recorded yet."
)

// PayerNamer resolves the display name of an expense's payer.
type PayerNamer interface {
	PayerName(e models.Expense) string
}

// FormatAmount formats an amount as dollars with two decimals, e.g. "$12.50".
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatSigned formats a balance with an explicit sign, e.g. "+20.00", "-10.00".
func FormatSigned(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.Round(2).IsPositive() {
		return "+" + s
	}
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// Settlement writes one "From → To: $amount" line per transaction.
func Settlement(w io.Writer, txs []models.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, SettledUpText)
		return err
	}
	for _, tx := range txs {
		if _, err := fmt.Fprintf(w, "%s → %s: %s\n", tx.FromName, tx.ToName, FormatAmount(tx.Amount)); err != nil {
			return err
		}
	}
	return nil
}

// Expenses writes one line per expense in the given order.
func Expenses(w io.Writer, expenses []models.Expense, payers PayerNamer) error {
	if len(expenses) == 0 {
		_, err := fmt.Fprintln(w, NoExpensesText)
		return err
	}
	for _, e := range expenses {
		if _, err := fmt.Fprintf(w, "%s (paid by %s): %s\n", e.Description, payers.PayerName(e), FormatAmount(e.Amount)); err != nil {
			return err
		}
	}
	return nil
}

// Balances writes one "Name: +12.34" line per member.
func Balances(w io.Writer, balances models.Balances) error {
	for _, b := range balances {
		if _, err := fmt.Fprintf(w, "%s: %s\n", b.Name, FormatSigned(b.Net)); err != nil {
			return err
		}
	}
	return nil
}
