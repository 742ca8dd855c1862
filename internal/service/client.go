package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// LedgerClient is a Connect client for the LedgerService.
type LedgerClient struct {
	addMember     *connect.Client[AddMemberRequest, AddMemberResponse]
	listMembers   *connect.Client[ListMembersRequest, ListMembersResponse]
	recordExpense *connect.Client[RecordExpenseRequest, RecordExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getBalances   *connect.Client[GetBalancesRequest, GetBalancesResponse]
	settle        *connect.Client[SettleRequest, SettleResponse]
}

// NewLedgerClient constructs a client for the LedgerService at baseURL
// (e.g. http://localhost:8080). The JSON codec is always installed.
func NewLedgerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &LedgerClient{
		addMember:     connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+AddMemberProcedure, opts...),
		listMembers:   connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+ListMembersProcedure, opts...),
		recordExpense: connect.NewClient[RecordExpenseRequest, RecordExpenseResponse](httpClient, baseURL+RecordExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ListExpensesProcedure, opts...),
		getBalances:   connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+GetBalancesProcedure, opts...),
		settle:        connect.NewClient[SettleRequest, SettleResponse](httpClient, baseURL+SettleProcedure, opts...),
	}
}

// AddMember calls splitledger.v1.LedgerService.AddMember.
func (c *LedgerClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

// ListMembers calls splitledger.v1.LedgerService.ListMembers.
func (c *LedgerClient) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

// RecordExpense calls splitledger.v1.LedgerService.RecordExpense.
func (c *LedgerClient) RecordExpense(ctx context.Context, req *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error) {
	return c.recordExpense.CallUnary(ctx, req)
}

// ListExpenses calls splitledger.v1.LedgerService.ListExpenses.
func (c *LedgerClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// GetBalances calls splitledger.v1.LedgerService.GetBalances.
func (c *LedgerClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

// Settle calls splitledger.v1.LedgerService.Settle.
func (c *LedgerClient) Settle(ctx context.Context, req *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}
