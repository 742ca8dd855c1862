package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleLargestFirst(t *testing.T) {
	t.Run("fewer transactions than greedy", func(t *testing.T) {
		balances := snapshot("a", "-10", "b", "-5", "c", "5", "d", "10")

		assertTransactions(t, []wantTx{
			{"a", "c", "5"},
			{"a", "d", "5"},
			{"b", "d", "5"},
		}, Settle(balances))

		assertTransactions(t, []wantTx{
			{"a", "d", "10"},
			{"b", "c", "5"},
		}, SettleLargestFirst(balances))
	})

	t.Run("ties resolve in member order", func(t *testing.T) {
		balances := snapshot("a", "-10", "b", "-40", "c", "25", "d", "25")
		assertTransactions(t, []wantTx{
			{"b", "c", "25"},
			{"b", "d", "15"},
			{"a", "d", "10"},
		}, SettleLargestFirst(balances))
	})

	t.Run("seeded scenario matches greedy", func(t *testing.T) {
		balances := snapshot("alice", "30", "bob", "-15", "carol", "-15")
		assertTransactions(t, []wantTx{
			{"bob", "alice", "15"},
			{"carol", "alice", "15"},
		}, SettleLargestFirst(balances))
	})

	t.Run("dust stops matching", func(t *testing.T) {
		balances := snapshot("alice", "0.004", "bob", "-0.004")
		got := SettleLargestFirst(balances)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SettleLargestFirst(nil))
	})
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyGreedy, false},
		{"greedy", StrategyGreedy, false},
		{" Largest ", StrategyLargest, false},
		{"optimal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategySettle(t *testing.T) {
	balances := snapshot("a", "-10", "b", "-5", "c", "5", "d", "10")
	assert.Len(t, StrategyGreedy.Settle(balances), 3)
	assert.Len(t, StrategyLargest.Settle(balances), 2)
}
