package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// dustExp makes the dust threshold one cent: 1 * 10^-2.
const dustExp = -2

// DustThreshold returns the smallest payment Settle will emit (0.01). Anything
// below it is residue from equal splits and is left unsettled.
func DustThreshold() decimal.Decimal {
	return decimal.New(1, dustExp)
}

// party is one side of a settlement with its remaining magnitude.
type party struct {
	key       string
	name      string
	remaining decimal.Decimal
}

// partition splits a snapshot into debtors and creditors, keeping snapshot order.
// Magnitudes are private copies; the snapshot is never modified.
func partition(balances models.Balances) (debtors, creditors []*party) {
	for _, b := range balances {
		switch b.Net.Sign() {
		case -1:
			debtors = append(debtors, &party{key: b.Key, name: b.Name, remaining: b.Net.Abs()})
		case 1:
			creditors = append(creditors, &party{key: b.Key, name: b.Name, remaining: b.Net})
		}
	}
	return debtors, creditors
}

// Settle turns a balance snapshot into payments that zero every balance.
//
// Algorithm (greedy, deterministic, not guaranteed minimal):
//   - Debtors (net < 0) and creditors (net > 0) are taken in snapshot order
//   - Each debtor pays each creditor in turn min(remaining debt, remaining credit)
//   - Pairs where either side is already exactly zero are skipped
//   - Amounts below DustThreshold are skipped without reducing either side
//
// Returns an empty slice when there is nothing to settle.
func Settle(balances models.Balances) []models.Transaction {
	debtors, creditors := partition(balances)

	txs := []models.Transaction{}
	for _, debtor := range debtors {
		for _, creditor := range creditors {
			if debtor.remaining.IsZero() || creditor.remaining.IsZero() {
				continue
			}

			// Amount to settle is minimum of what debtor owes and creditor is owed
			amount := decimal.Min(debtor.remaining, creditor.remaining)
			if amount.LessThan(DustThreshold()) {
				continue
			}

			txs = append(txs, transfer(debtor, creditor, amount))
			debtor.remaining = debtor.remaining.Sub(amount)
			creditor.remaining = creditor.remaining.Sub(amount)
		}
	}

	return txs
}

func transfer(debtor, creditor *party, amount decimal.Decimal) models.Transaction {
	return models.Transaction{
		From:     debtor.key,
		To:       creditor.key,
		FromName: debtor.name,
		ToName:   creditor.name,
		Amount:   amount,
	}
}
