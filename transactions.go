package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction. Income, expense and investment
// flow into the spending reports; asset and liability carry balance
// declarations; transfer records moves between accounts.
type TransactionType string

const (
	TypeIncome     TransactionType = "income"
	TypeExpense    TransactionType = "expense"
	TypeInvestment TransactionType = "investment"
	TypeTransfer   TransactionType = "transfer"
	TypeAsset      TransactionType = "asset"
	TypeLiability  TransactionType = "liability"
)

// TransactionTypes lists all transaction types, in display order.
func TransactionTypes() []TransactionType {
	return []TransactionType{TypeIncome, TypeExpense, TypeInvestment, TypeTransfer, TypeAsset, TypeLiability}
}

// ParseTransactionType parses a transaction type string.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeIncome, TypeExpense, TypeInvestment, TypeTransfer, TypeAsset, TypeLiability:
		return t, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is a single dated money movement. Amount is always
// non-negative: the type carries the direction.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Date        Date            `json:"date"`
	// Account is the display name of the account this transaction belongs
	// to. It is informational: no referential check ties it to an Account
	// record.
	Account string   `json:"account,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// NewTransaction returns a transaction with a fresh ID and the category
// resolved against the transaction type.
func NewTransaction(t TransactionType, amount decimal.Decimal, cur Currency, category string, description string, on Date) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Type:        t,
		Amount:      amount,
		Currency:    cur,
		Description: description,
		Category:    ParseCategoryFor(t, category),
		Date:        on,
	}
}

// Validate checks the transaction invariants.
func (tx Transaction) Validate() error {
	if tx.ID == "" {
		return fmt.Errorf("transaction has no id")
	}
	if _, err := ParseTransactionType(string(tx.Type)); err != nil {
		return fmt.Errorf("transaction %s: %w", tx.ID, err)
	}
	if tx.Amount.IsNegative() {
		return fmt.Errorf("transaction %s: amount %s is negative", tx.ID, tx.Amount)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("transaction %s: missing date", tx.ID)
	}
	return nil
}

// UnmarshalJSON decodes a transaction and re-resolves the category kind
// against the decoded type.
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	type shadow Transaction
	var s shadow
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*tx = Transaction(s)
	tx.Category = ParseCategoryFor(tx.Type, tx.Category.String())
	return nil
}

// TransactionPatch carries the fields of a partial update. Nil fields are
// left untouched.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Currency    *Currency
	Description *string
	Category    *string
	Date        *Date
	Account     *string
	Tags        *[]string
}

// apply merges the patch into the transaction.
func (p TransactionPatch) apply(tx *Transaction) {
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Currency != nil {
		tx.Currency = *p.Currency
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Account != nil {
		tx.Account = *p.Account
	}
	if p.Tags != nil {
		tx.Tags = *p.Tags
	}
	// Category last: it depends on the (possibly patched) type.
	if p.Category != nil {
		tx.Category = ParseCategoryFor(tx.Type, *p.Category)
	} else if p.Type != nil {
		tx.Category = ParseCategoryFor(tx.Type, tx.Category.String())
	}
}
