package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SetupAccount is one bank account entry of the initial setup wizard.
type SetupAccount struct {
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// SetupInvestment is one investment platform entry of the initial setup
// wizard. The whole platform balance is modeled as a single unit holding.
type SetupInvestment struct {
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// SetupDebt is one debt entry of the initial setup wizard.
type SetupDebt struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"` // credit_card, loan, ...
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// Setup is the full input of the initial setup wizard.
type Setup struct {
	Accounts    []SetupAccount    `json:"accounts"`
	Investments []SetupInvestment `json:"investments"`
	Debts       []SetupDebt       `json:"debts"`
}

// Validate checks the wizard entries before anything is written.
func (s Setup) Validate() error {
	for _, a := range s.Accounts {
		if a.Name == "" {
			return fmt.Errorf("setup: account with empty name")
		}
		if _, err := ParseAccountType(string(a.Type)); err != nil {
			return fmt.Errorf("setup: account %q: %w", a.Name, err)
		}
		if a.Balance.IsNegative() {
			return fmt.Errorf("setup: account %q: balance %s is negative", a.Name, a.Balance)
		}
	}
	for _, i := range s.Investments {
		if i.Balance.IsNegative() {
			return fmt.Errorf("setup: investment %q: balance %s is negative", i.Name, i.Balance)
		}
	}
	for _, d := range s.Debts {
		if d.Balance.IsNegative() {
			return fmt.Errorf("setup: debt %q: balance %s is negative", d.Name, d.Balance)
		}
	}
	return nil
}

// Apply writes the wizard entries into the store: account and investment
// records plus the mirror asset and liability transactions that feed the
// reports. The mirror transactions are independent records, nothing links
// them back to the account or investment they describe.
func (s Setup) Apply(store *Store, on Date) error {
	if err := s.Validate(); err != nil {
		return err
	}

	for _, a := range s.Accounts {
		if err := store.AddAccount(NewAccount(a.Name, a.Type, a.Balance, a.Currency)); err != nil {
			return err
		}
	}

	for _, i := range s.Investments {
		if i.Name == "" || !i.Balance.IsPositive() {
			continue
		}
		inv := NewInvestment(i.Name, OtherAsset, decimal.NewFromInt(1), i.Balance, on, i.Currency)
		inv.Description = fmt.Sprintf("Initial %s investment account", i.Name)
		if err := store.AddInvestment(inv); err != nil {
			return err
		}
	}

	// Mirror transactions, in the same order the wizard wrote them:
	// account balances, then investments, then debts.
	for _, a := range s.Accounts {
		if !a.Balance.IsPositive() {
			continue
		}
		tx := NewTransaction(TypeAsset, a.Balance, a.Currency, InitialBalanceLabel, fmt.Sprintf("Initial %s balance", a.Name), on)
		tx.Account = string(a.Type)
		if err := store.AddTransaction(tx); err != nil {
			return err
		}
	}
	for _, i := range s.Investments {
		if i.Name == "" || !i.Balance.IsPositive() {
			continue
		}
		tx := NewTransaction(TypeAsset, i.Balance, i.Currency, string(OtherAsset), fmt.Sprintf("Initial %s investment", i.Name), on)
		tx.Account = "investment"
		if err := store.AddTransaction(tx); err != nil {
			return err
		}
	}
	for _, d := range s.Debts {
		if d.Name == "" || !d.Balance.IsPositive() {
			continue
		}
		tx := NewTransaction(TypeLiability, d.Balance, d.Currency, DebtLabel, fmt.Sprintf("Initial %s debt", d.Name), on)
		tx.Account = d.Type
		if err := store.AddTransaction(tx); err != nil {
			return err
		}
	}
	return nil
}
