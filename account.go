package dashboard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank or card account.
type AccountType string

const (
	Checking       AccountType = "checking"
	Savings        AccountType = "savings"
	InvestmentAcct AccountType = "investment"
	Credit         AccountType = "credit"
	Debit          AccountType = "debit"
)

// ParseAccountType parses an account type string.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Checking, Savings, InvestmentAcct, Credit, Debit:
		return t, nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// Account is a named balance. The balance is a declaration, not a running
// total: no invariant ties it to the transactions that mention the account.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// NewAccount returns an account with a fresh ID.
func NewAccount(name string, t AccountType, balance decimal.Decimal, cur Currency) Account {
	return Account{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     t,
		Balance:  balance,
		Currency: cur,
	}
}

// Validate checks the account invariants.
func (a Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account has no id")
	}
	if a.Name == "" {
		return fmt.Errorf("account %s: missing name", a.ID)
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return fmt.Errorf("account %s: %w", a.ID, err)
	}
	return nil
}

// AccountPatch carries the fields of a partial update. Nil fields are left
// untouched.
type AccountPatch struct {
	Name     *string
	Type     *AccountType
	Balance  *decimal.Decimal
	Currency *Currency
}

func (p AccountPatch) apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
}
