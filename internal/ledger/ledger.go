// Package ledger records members and shared expenses and computes net balances.
package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// UnknownMemberName is displayed for a payer key that does not resolve.
const UnknownMemberName = "Unknown"

// Ledger owns a set of members and an append-only list of expenses.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	members  map[string]*models.Member
	order    []string // member keys in registration order
	expenses []models.Expense

	now   func() time.Time
	newID func() string
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{
		members: make(map[string]*models.Member),
		now:     time.Now,
		newID:   newExpenseID,
	}
}

func newExpenseID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// GetOrCreateMember returns the member for name, registering it on first use.
// Returns nil for a blank name. The result is a copy.
func (l *Ledger) GetOrCreateMember(name string) *models.Member {
	m := l.register(name)
	if m == nil {
		return nil
	}
	out := *m
	return &out
}

func (l *Ledger) register(name string) *models.Member {
	key := models.NormalizeName(name)
	if key == "" {
		return nil
	}
	if m, ok := l.members[key]; ok {
		return m
	}
	m := &models.Member{Key: key, Name: strings.TrimSpace(name)}
	l.members[key] = m
	l.order = append(l.order, key)
	return m
}

// Member looks up a member by key or raw name and returns a copy.
func (l *Ledger) Member(name string) (*models.Member, error) {
	key := models.NormalizeName(name)
	if m, ok := l.members[key]; ok {
		out := *m
		return &out, nil
	}
	return nil, &UnresolvedReferenceError{Key: key}
}

// Members returns copies of all members in registration order.
func (l *Ledger) Members() []*models.Member {
	out := make([]*models.Member, len(l.order))
	for i, key := range l.order {
		m := *l.members[key]
		out[i] = &m
	}
	return out
}

// RecordExpense validates and appends an expense, registering the payer and
// participants as members. On a ValidationError nothing is changed.
func (l *Ledger) RecordExpense(description string, amount decimal.Decimal, payer string, participants []string) (*models.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalid("description", "required")
	}
	if !amount.IsPositive() {
		return nil, invalid("amount", "must be greater than zero")
	}
	payerKey := models.NormalizeName(payer)
	if payerKey == "" {
		return nil, invalid("paid_by", "required")
	}

	var names []string
	for _, p := range participants {
		if strings.TrimSpace(p) != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil, invalid("split_with", "at least one participant required")
	}

	// Everything is valid from here on; register members in first-seen order.
	l.register(payer)
	splitWith := make([]string, len(names))
	for i, name := range names {
		splitWith[i] = l.register(name).Key
	}

	expense := models.Expense{
		ID:          l.newID(),
		Seq:         len(l.expenses) + 1,
		Description: description,
		Amount:      amount,
		PaidBy:      payerKey,
		SplitWith:   splitWith,
		CreatedAt:   l.now().Unix(),
	}
	l.expenses = append(l.expenses, expense)

	out := cloneExpense(expense)
	return &out, nil
}

// RecordRaw records an expense from unparsed field values. The description is
// checked before the amount is parsed.
func (l *Ledger) RecordRaw(description, amount, payer string, participants []string) (*models.Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, invalid("description", "required")
	}
	parsed, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	return l.RecordExpense(description, parsed, payer, participants)
}

// RecordInput parses raw form fields and records the expense.
func (l *Ledger) RecordInput(in ExpenseInput) (*models.Expense, error) {
	return l.RecordRaw(in.Description, in.Amount, in.PaidBy, SplitNames(in.SplitWith))
}

// Expenses returns copies of all expenses in the order they were recorded.
func (l *Ledger) Expenses() []models.Expense {
	out := make([]models.Expense, len(l.expenses))
	for i, e := range l.expenses {
		out[i] = cloneExpense(e)
	}
	return out
}

// ExpensesNewestFirst returns copies of all expenses, most recent first.
func (l *Ledger) ExpensesNewestFirst() []models.Expense {
	out := l.Expenses()
	slices.Reverse(out)
	return out
}

func cloneExpense(e models.Expense) models.Expense {
	e.SplitWith = slices.Clone(e.SplitWith)
	return e
}

// PayerName returns the payer's display name, or UnknownMemberName when the
// payer key does not resolve.
func (l *Ledger) PayerName(e models.Expense) string {
	m, err := l.Member(e.PaidBy)
	if err != nil {
		return UnknownMemberName
	}
	return m.Name
}

// ComputeBalances recomputes every member's balance from the full expense
// list and returns the snapshot in registration order.
//
// Algorithm:
//   - Every balance restarts at zero
//   - The payer is credited the full amount
//   - Each SplitWith entry is debited amount / len(SplitWith); duplicates count twice
func (l *Ledger) ComputeBalances() models.Balances {
	paid := make(map[string]decimal.Decimal, len(l.members))
	owed := make(map[string]decimal.Decimal, len(l.members))
	for _, m := range l.members {
		m.Balance = decimal.Zero
	}

	for _, e := range l.expenses {
		share, err := calculator.EqualShare(e.Amount, len(e.SplitWith))
		if err != nil {
			// unreachable for recorded expenses
			continue
		}
		if _, ok := l.members[e.PaidBy]; ok {
			paid[e.PaidBy] = paid[e.PaidBy].Add(e.Amount)
		}
		for _, key := range e.SplitWith {
			if _, ok := l.members[key]; ok {
				owed[key] = owed[key].Add(share)
			}
		}
	}

	balances := make(models.Balances, 0, len(l.order))
	for _, key := range l.order {
		m := l.members[key]
		m.Balance = paid[key].Sub(owed[key])
		balances = append(balances, models.MemberBalance{
			Key:  key,
			Name: m.Name,
			Net:  m.Balance,
			Paid: paid[key],
			Owed: owed[key],
		})
	}
	return balances
}
