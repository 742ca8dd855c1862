// Package service exposes a Ledger over Connect RPC.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/metrics"
)

// LedgerService implements the Connect LedgerService over one in-memory Ledger.
// Every call holds the lock for its whole read/compute cycle.
type LedgerService struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	strategy calculator.Strategy
	metrics  *metrics.Metrics
}

// NewLedgerService creates a LedgerService around l. strategy is used by Settle
// calls that do not name one.
func NewLedgerService(l *ledger.Ledger, strategy calculator.Strategy, m *metrics.Metrics) *LedgerService {
	return &LedgerService{ledger: l, strategy: strategy, metrics: m}
}

// Handler returns the mount path and HTTP handler for all procedures.
func (s *LedgerService) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(AddMemberProcedure, connect.NewUnaryHandler(AddMemberProcedure, s.AddMember, opts...))
	mux.Handle(ListMembersProcedure, connect.NewUnaryHandler(ListMembersProcedure, s.ListMembers, opts...))
	mux.Handle(RecordExpenseProcedure, connect.NewUnaryHandler(RecordExpenseProcedure, s.RecordExpense, opts...))
	mux.Handle(ListExpensesProcedure, connect.NewUnaryHandler(ListExpensesProcedure, s.ListExpenses, opts...))
	mux.Handle(GetBalancesProcedure, connect.NewUnaryHandler(GetBalancesProcedure, s.GetBalances, opts...))
	mux.Handle(SettleProcedure, connect.NewUnaryHandler(SettleProcedure, s.Settle, opts...))
	return ServicePath, mux
}

// AddMember registers a member, or returns the existing one for that name.
func (s *LedgerService) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.ledger.GetOrCreateMember(req.Msg.Name)
	if m == nil {
		s.metrics.ValidationFailures.WithLabelValues("name").Inc()
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}
	s.metrics.Members.Set(float64(len(s.ledger.Members())))

	return connect.NewResponse(&AddMemberResponse{Member: toMember(m)}), nil
}

// ListMembers returns members in registration order.
func (s *LedgerService) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.ComputeBalances()
	members := s.ledger.Members()
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = toMember(m)
	}
	return connect.NewResponse(&ListMembersResponse{Members: out}), nil
}

// RecordExpense validates and records an expense. Invalid input is rejected
// with InvalidArgument and leaves the ledger unchanged.
func (s *LedgerService) RecordExpense(ctx context.Context, req *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error) {
	slog.Debug("RecordExpense request received",
		"description", req.Msg.Description,
		"amount", req.Msg.Amount,
		"paid_by", req.Msg.PaidBy,
		"split_with", req.Msg.SplitWith,
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := req.Msg
	expense, err := s.ledger.RecordRaw(msg.Description, msg.Amount, msg.PaidBy, msg.SplitWith)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			s.metrics.ValidationFailures.WithLabelValues(verr.Field).Inc()
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		slog.Error("RecordExpense failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.metrics.ExpensesRecorded.Inc()
	s.metrics.Members.Set(float64(len(s.ledger.Members())))
	slog.Info("Expense recorded", "expense_id", expense.ID, "amount", expense.Amount.String(), "participants", len(expense.SplitWith))

	return connect.NewResponse(&RecordExpenseResponse{
		Expense: toExpense(*expense, s.ledger.PayerName(*expense)),
	}), nil
}

// ListExpenses returns all expenses, most recent first.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.ledger.ExpensesNewestFirst()
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toExpense(e, s.ledger.PayerName(e))
	}
	return connect.NewResponse(&ListExpensesResponse{Expenses: out}), nil
}

// GetBalances recomputes and returns every member's balance.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balances := s.ledger.ComputeBalances()
	out := make([]Balance, len(balances))
	for i, b := range balances {
		out[i] = toBalance(b)
	}
	return connect.NewResponse(&GetBalancesResponse{Balances: out}), nil
}

// Settle computes the payments that clear all balances.
func (s *LedgerService) Settle(ctx context.Context, req *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error) {
	strategy := s.strategy
	if req.Msg.Strategy != "" {
		parsed, err := calculator.ParseStrategy(req.Msg.Strategy)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		strategy = parsed
	}

	s.mu.Lock()
	txs := strategy.Settle(s.ledger.ComputeBalances())
	s.mu.Unlock()

	s.metrics.Settlements.WithLabelValues(string(strategy)).Inc()
	s.metrics.SettlementSize.Observe(float64(len(txs)))
	slog.Info("Settlement computed", "strategy", strategy, "transactions", len(txs))

	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = toTransaction(tx)
	}
	return connect.NewResponse(&SettleResponse{
		Strategy:     string(strategy),
		Transactions: out,
		Settled:      len(txs) == 0,
	}), nil
}
