package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/middleware"
)

// setupTestServer creates a test server around a fresh ledger.
func setupTestServer(t *testing.T, strategy calculator.Strategy) (*LedgerClient, *metrics.Metrics) {
	t.Helper()

	m := metrics.New()
	svc := NewLedgerService(ledger.New(), strategy, m)
	path, handler := svc.Handler(connect.WithInterceptors(middleware.RPCLogger(nil)))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewLedgerClient(http.DefaultClient, server.URL), m
}

func recordExpense(t *testing.T, client *LedgerClient, description, amount, paidBy string, splitWith ...string) *RecordExpenseResponse {
	t.Helper()
	resp, err := client.RecordExpense(context.Background(), connect.NewRequest(&RecordExpenseRequest{
		Description: description,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitWith:   splitWith,
	}))
	require.NoError(t, err)
	return resp.Msg
}

func TestRecordExpense(t *testing.T) {
	client, m := setupTestServer(t, calculator.StrategyGreedy)

	got := recordExpense(t, client, "Dinner", "30", "Alice", "Alice", "Bob", "Carol")
	assert.NotEmpty(t, got.Expense.ID)
	assert.Equal(t, "alice", got.Expense.PaidBy)
	assert.Equal(t, "Alice", got.Expense.PaidByName)
	assert.Equal(t, []string{"alice", "bob", "carol"}, got.Expense.SplitWith)
	assert.True(t, decimal.NewFromInt(30).Equal(got.Expense.Amount))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpensesRecorded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Members))
}

func TestRecordExpense_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		req   *RecordExpenseRequest
		field string
	}{
		{"zero amount", &RecordExpenseRequest{Description: "Lunch", Amount: "0", PaidBy: "Alice", SplitWith: []string{"Bob"}}, "amount"},
		{"negative amount", &RecordExpenseRequest{Description: "Lunch", Amount: "-5", PaidBy: "Alice", SplitWith: []string{"Bob"}}, "amount"},
		{"non-numeric amount", &RecordExpenseRequest{Description: "Lunch", Amount: "ten", PaidBy: "Alice", SplitWith: []string{"Bob"}}, "amount"},
		{"missing description", &RecordExpenseRequest{Amount: "10", PaidBy: "Alice", SplitWith: []string{"Bob"}}, "description"},
		{"missing description and bad amount", &RecordExpenseRequest{Description: " ", Amount: "ten", PaidBy: "Alice", SplitWith: []string{"Bob"}}, "description"},
		{"missing payer", &RecordExpenseRequest{Description: "Lunch", Amount: "10", SplitWith: []string{"Bob"}}, "paid_by"},
		{"blank participants", &RecordExpenseRequest{Description: "Lunch", Amount: "10", PaidBy: "Alice", SplitWith: []string{" "}}, "split_with"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, m := setupTestServer(t, calculator.StrategyGreedy)
			ctx := context.Background()

			_, err := client.RecordExpense(ctx, connect.NewRequest(tt.req))
			require.Error(t, err)
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues(tt.field)))

			members, err := client.ListMembers(ctx, connect.NewRequest(&ListMembersRequest{}))
			require.NoError(t, err)
			assert.Empty(t, members.Msg.Members)

			expenses, err := client.ListExpenses(ctx, connect.NewRequest(&ListExpensesRequest{}))
			require.NoError(t, err)
			assert.Empty(t, expenses.Msg.Expenses)
		})
	}
}

func TestAddMember(t *testing.T) {
	client, _ := setupTestServer(t, calculator.StrategyGreedy)
	ctx := context.Background()

	first, err := client.AddMember(ctx, connect.NewRequest(&AddMemberRequest{Name: "Bob"}))
	require.NoError(t, err)
	assert.Equal(t, "bob", first.Msg.Member.Key)

	again, err := client.AddMember(ctx, connect.NewRequest(&AddMemberRequest{Name: "  BOB "}))
	require.NoError(t, err)
	assert.Equal(t, "Bob", again.Msg.Member.Name)

	_, err = client.AddMember(ctx, connect.NewRequest(&AddMemberRequest{Name: "   "}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	members, err := client.ListMembers(ctx, connect.NewRequest(&ListMembersRequest{}))
	require.NoError(t, err)
	require.Len(t, members.Msg.Members, 1)
}

func TestGetBalancesAndSettle(t *testing.T) {
	client, m := setupTestServer(t, calculator.StrategyGreedy)
	ctx := context.Background()

	recordExpense(t, client, "Hotel", "60", "Alice", "Alice", "Bob")
	recordExpense(t, client, "Train", "30", "Bob", "Bob", "Carol")

	balances, err := client.GetBalances(ctx, connect.NewRequest(&GetBalancesRequest{}))
	require.NoError(t, err)
	want := map[string]string{"alice": "30", "bob": "-15", "carol": "-15"}
	require.Len(t, balances.Msg.Balances, 3)
	for _, b := range balances.Msg.Balances {
		assert.True(t, decimal.RequireFromString(want[b.Key]).Equal(b.Net), "%s = %s", b.Key, b.Net)
	}

	settle, err := client.Settle(ctx, connect.NewRequest(&SettleRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "greedy", settle.Msg.Strategy)
	assert.False(t, settle.Msg.Settled)
	require.Len(t, settle.Msg.Transactions, 2)
	assert.Equal(t, "Bob", settle.Msg.Transactions[0].FromName)
	assert.Equal(t, "Carol", settle.Msg.Transactions[1].FromName)
	for _, tx := range settle.Msg.Transactions {
		assert.Equal(t, "alice", tx.To)
		assert.True(t, decimal.NewFromInt(15).Equal(tx.Amount))
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Settlements.WithLabelValues("greedy")))

	members, err := client.ListMembers(ctx, connect.NewRequest(&ListMembersRequest{}))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(members.Msg.Members[0].Balance))
}

func TestSettle_Strategies(t *testing.T) {
	client, _ := setupTestServer(t, calculator.StrategyGreedy)
	ctx := context.Background()

	// a: -10, b: -5, c: +5, d: +10
	recordExpense(t, client, "Tickets", "5", "c", "a")
	recordExpense(t, client, "Dinner", "10", "d", "a", "b")
	recordExpense(t, client, "Taxi", "5", "d", "d")

	greedy, err := client.Settle(ctx, connect.NewRequest(&SettleRequest{}))
	require.NoError(t, err)
	assert.Len(t, greedy.Msg.Transactions, 3)

	largest, err := client.Settle(ctx, connect.NewRequest(&SettleRequest{Strategy: "largest"}))
	require.NoError(t, err)
	assert.Equal(t, "largest", largest.Msg.Strategy)
	assert.Len(t, largest.Msg.Transactions, 2)

	_, err = client.Settle(ctx, connect.NewRequest(&SettleRequest{Strategy: "magic"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestSettle_EmptyLedger(t *testing.T) {
	client, _ := setupTestServer(t, calculator.StrategyLargest)

	resp, err := client.Settle(context.Background(), connect.NewRequest(&SettleRequest{}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Settled)
	assert.Empty(t, resp.Msg.Transactions)
	assert.Equal(t, "largest", resp.Msg.Strategy)
}

func TestListExpenses_NewestFirst(t *testing.T) {
	client, _ := setupTestServer(t, calculator.StrategyGreedy)

	recordExpense(t, client, "First", "1", "Alice", "Alice")
	recordExpense(t, client, "Second", "2", "Bob", "Alice")

	resp, err := client.ListExpenses(context.Background(), connect.NewRequest(&ListExpensesRequest{}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Expenses, 2)
	assert.Equal(t, "Second", resp.Msg.Expenses[0].Description)
	assert.Equal(t, "Bob", resp.Msg.Expenses[0].PaidByName)
	assert.Equal(t, 2, resp.Msg.Expenses[0].Seq)
	assert.Equal(t, "First", resp.Msg.Expenses[1].Description)
}
