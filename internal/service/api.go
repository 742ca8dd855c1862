package service

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// ServiceName is the fully-qualified Connect service name.
const ServiceName = "splitledger.v1.LedgerService"

// ServicePath is the mount point for the LedgerService handler.
const ServicePath = "/" + ServiceName + "/"

// Procedure paths served by the LedgerService.
const (
	AddMemberProcedure     = ServicePath + "AddMember"
	ListMembersProcedure   = ServicePath + "ListMembers"
	RecordExpenseProcedure = ServicePath + "RecordExpense"
	ListExpensesProcedure  = ServicePath + "ListExpenses"
	GetBalancesProcedure   = ServicePath + "GetBalances"
	SettleProcedure        = ServicePath + "Settle"
)

// JSONCodec carries plain Go request/response structs over Connect as JSON.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Member is the wire form of models.Member.
type Member struct {
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Expense is the wire form of models.Expense with the payer resolved.
type Expense struct {
	ID          string          `json:"id"`
	Seq         int             `json:"seq"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      string          `json:"paid_by"`
	PaidByName  string          `json:"paid_by_name"`
	SplitWith   []string        `json:"split_with"`
	CreatedAt   int64           `json:"created_at"`
}

// Balance is the wire form of models.MemberBalance.
type Balance struct {
	Key  string          `json:"key"`
	Name string          `json:"name"`
	Net  decimal.Decimal `json:"net"`
	Paid decimal.Decimal `json:"paid"`
	Owed decimal.Decimal `json:"owed"`
}

// Transaction is the wire form of models.Transaction.
type Transaction struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	FromName string          `json:"from_name"`
	ToName   string          `json:"to_name"`
	Amount   decimal.Decimal `json:"amount"`
}

type AddMemberRequest struct {
	Name string `json:"name"`
}

type AddMemberResponse struct {
	Member Member `json:"member"`
}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []Member `json:"members"`
}

// RecordExpenseRequest carries raw form values; Amount is a decimal string.
type RecordExpenseRequest struct {
	Description string   `json:"description"`
	Amount      string   `json:"amount"`
	PaidBy      string   `json:"paid_by"`
	SplitWith   []string `json:"split_with"`
}

type RecordExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct{}

// ListExpensesResponse lists expenses most recent first.
type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	Balances []Balance `json:"balances"`
}

// SettleRequest optionally overrides the server's default strategy.
type SettleRequest struct {
	Strategy string `json:"strategy,omitempty"`
}

type SettleResponse struct {
	Strategy     string        `json:"strategy"`
	Transactions []Transaction `json:"transactions"`
	// Settled is true when no payments are needed.
	Settled bool `json:"settled"`
}

func toMember(m *models.Member) Member {
	return Member{Key: m.Key, Name: m.Name, Balance: m.Balance}
}

func toExpense(e models.Expense, payerName string) Expense {
	return Expense{
		ID:          e.ID,
		Seq:         e.Seq,
		Description: e.Description,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		PaidByName:  payerName,
		SplitWith:   e.SplitWith,
		CreatedAt:   e.CreatedAt,
	}
}

func toBalance(b models.MemberBalance) Balance {
	return Balance{Key: b.Key, Name: b.Name, Net: b.Net, Paid: b.Paid, Owed: b.Owed}
}

func toTransaction(tx models.Transaction) Transaction {
	return Transaction{From: tx.From, To: tx.To, FromName: tx.FromName, ToName: tx.ToName, Amount: tx.Amount}
}
