package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EqualShare computes how much each of count participants owes for amount.
// Division keeps decimal.DivisionPrecision digits, so 100 / 3 leaves a sub-cent
// residue that DustThreshold absorbs at settlement time.
func EqualShare(amount decimal.Decimal, count int) (decimal.Decimal, error) {
	if count <= 0 {
		return decimal.Zero, fmt.Errorf("must have at least one participant")
	}
	return amount.Div(decimal.NewFromInt(int64(count))), nil
}
