package calculator

import (
	"fmt"
	"strings"

	"github.com/mmynk/splitledger/internal/models"
)

// Strategy names a settlement algorithm.
type Strategy string

const (
	// StrategyGreedy walks debtors and creditors in member order. Default.
	StrategyGreedy Strategy = "greedy"
	// StrategyLargest matches the largest debtor with the largest creditor.
	StrategyLargest Strategy = "largest"
)

// ParseStrategy resolves a strategy name. Empty means StrategyGreedy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyLargest:
		return StrategyLargest, nil
	default:
		return "", fmt.Errorf("unknown settle strategy %q: must be one of %q, %q", name, StrategyGreedy, StrategyLargest)
	}
}

// Settle runs the strategy against a balance snapshot.
func (s Strategy) Settle(balances models.Balances) []models.Transaction {
	if s == StrategyLargest {
		return SettleLargestFirst(balances)
	}
	return Settle(balances)
}
