// Package importer reads expense batches for the CLI.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmynk/splitledger/internal/ledger"
)

// Header is the expected CSV header row.
const Header = "description,amount,paid_by,split_with"

const (
	numFields    = 4
	colDesc      = 0
	colAmount    = 1
	colPaidBy    = 2
	colSplitWith = 3
)

// ReadExpenses reads expense rows from CSV. The header row is optional; when
// present it must match Header. split_with is a comma-separated list and must
// be quoted when it names more than one person.
func ReadExpenses(r io.Reader) ([]ledger.ExpenseInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var inputs []ledger.ExpenseInput
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading expenses CSV: %w", err)
		}
		if row == 1 && isHeader(rec) {
			continue
		}
		inputs = append(inputs, UnmarshalExpense(rec))
	}
	return inputs, nil
}

// UnmarshalExpense maps one CSV record onto an ExpenseInput. Values are left
// raw; the ledger validates them.
func UnmarshalExpense(rec []string) ledger.ExpenseInput {
	return ledger.ExpenseInput{
		Description: rec[colDesc],
		Amount:      rec[colAmount],
		PaidBy:      rec[colPaidBy],
		SplitWith:   rec[colSplitWith],
	}
}

// ParseFlag parses the CLI shorthand "description|amount|paid_by|a,b,c".
func ParseFlag(s string) (ledger.ExpenseInput, error) {
	parts := strings.Split(s, "|")
	if len(parts) != numFields {
		return ledger.ExpenseInput{}, fmt.Errorf("invalid expense %q: want description|amount|paid_by|split_with", s)
	}
	return UnmarshalExpense(parts), nil
}

func isHeader(rec []string) bool {
	return strings.EqualFold(strings.Join(rec, ","), Header)
}
