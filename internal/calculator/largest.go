package calculator

import (
	"container/heap"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// rankedParty carries a party's position in the snapshot for tie-breaking.
type rankedParty struct {
	*party
	rank int
}

// partyHeap is a max-heap on remaining magnitude; ties go to the earlier member.
type partyHeap []rankedParty

func (h partyHeap) Len() int { return len(h) }

func (h partyHeap) Less(i, j int) bool {
	if c := h[i].remaining.Cmp(h[j].remaining); c != 0 {
		return c > 0
	}
	return h[i].rank < h[j].rank
}

func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *partyHeap) Push(x any) { *h = append(*h, x.(rankedParty)) }

func (h *partyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func newPartyHeap(parties []*party) *partyHeap {
	h := make(partyHeap, 0, len(parties))
	for i, p := range parties {
		h = append(h, rankedParty{party: p, rank: i})
	}
	heap.Init(&h)
	return &h
}

// SettleLargestFirst settles by always matching the largest remaining debtor
// with the largest remaining creditor. Every step clears at least one side, so
// it emits at most debtors+creditors-1 transactions.
//
// The same DustThreshold applies. Once the largest pair is below it, every
// other pair is too, and matching stops.
func SettleLargestFirst(balances models.Balances) []models.Transaction {
	debtorList, creditorList := partition(balances)
	debtors := newPartyHeap(debtorList)
	creditors := newPartyHeap(creditorList)

	txs := []models.Transaction{}
	for debtors.Len() > 0 && creditors.Len() > 0 {
		debtor := heap.Pop(debtors).(rankedParty)
		creditor := heap.Pop(creditors).(rankedParty)

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		if amount.LessThan(DustThreshold()) {
			break
		}

		txs = append(txs, transfer(debtor.party, creditor.party, amount))
		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		if !debtor.remaining.IsZero() {
			heap.Push(debtors, debtor)
		}
		if !creditor.remaining.IsZero() {
			heap.Push(creditors, creditor)
		}
	}

	return txs
}
