package dashboard

import (
	"fmt"
	"slices"
	"sync"
)

// Data is the full persisted state: the three record collections.
type Data struct {
	Transactions []Transaction `json:"transactions"`
	Investments  []Investment  `json:"investments"`
	Accounts     []Account     `json:"accounts"`
}

// Persister loads and saves the full data set. DirStore is the file-backed
// implementation; a nil Persister keeps the store purely in memory.
type Persister interface {
	Load() (Data, error)
	Save(Data) error
}

// Store holds the records in memory and writes every mutation through to its
// Persister. Readers get snapshots: mutating a returned slice never touches
// the store.
type Store struct {
	mu        sync.RWMutex
	data      Data
	persister Persister
}

// NewStore returns an empty in-memory store.
func NewStore() *Store { return &Store{} }

// OpenStore loads a store from the persister and keeps writing through to it.
func OpenStore(p Persister) (*Store, error) {
	data, err := p.Load()
	if err != nil {
		return nil, err
	}
	s := &Store{data: data, persister: p}
	s.sortTransactions()
	return s, nil
}

// sortTransactions keeps transactions in stable chronological order.
func (s *Store) sortTransactions() {
	slices.SortStableFunc(s.data.Transactions, func(a, b Transaction) int {
		if a.Date.Before(b.Date) {
			return -1
		}
		if a.Date.After(b.Date) {
			return 1
		}
		return 0
	})
}

func (s *Store) save() error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(s.data); err != nil {
		return fmt.Errorf("could not save data: %w", err)
	}
	return nil
}

// Transactions returns a snapshot of all transactions in chronological order.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Transactions)
}

// Investments returns a snapshot of all investments.
func (s *Store) Investments() []Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Investments)
}

// Accounts returns a snapshot of all accounts.
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Accounts)
}

// AddTransaction validates and appends a transaction.
func (s *Store) AddTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Transactions = append(s.data.Transactions, tx)
	s.sortTransactions()
	return s.save()
}

// UpdateTransaction applies a partial update and returns the updated record.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.data.Transactions, func(tx Transaction) bool { return tx.ID == id })
	if i < 0 {
		return Transaction{}, fmt.Errorf("transaction %q not found", id)
	}
	updated := s.data.Transactions[i]
	patch.apply(&updated)
	if err := updated.Validate(); err != nil {
		return Transaction{}, err
	}
	s.data.Transactions[i] = updated
	s.sortTransactions()
	return updated, s.save()
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.data.Transactions)
	s.data.Transactions = slices.DeleteFunc(s.data.Transactions, func(tx Transaction) bool { return tx.ID == id })
	if len(s.data.Transactions) == n {
		return fmt.Errorf("transaction %q not found", id)
	}
	return s.save()
}

// AddInvestment validates and appends an investment.
func (s *Store) AddInvestment(inv Investment) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Investments = append(s.data.Investments, inv)
	return s.save()
}

// UpdateInvestment applies a partial update and returns the updated record.
func (s *Store) UpdateInvestment(id string, patch InvestmentPatch) (Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.data.Investments, func(inv Investment) bool { return inv.ID == id })
	if i < 0 {
		return Investment{}, fmt.Errorf("investment %q not found", id)
	}
	updated := s.data.Investments[i]
	patch.apply(&updated)
	if err := updated.Validate(); err != nil {
		return Investment{}, err
	}
	s.data.Investments[i] = updated
	return updated, s.save()
}

// DeleteInvestment removes an investment by id.
func (s *Store) DeleteInvestment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.data.Investments)
	s.data.Investments = slices.DeleteFunc(s.data.Investments, func(inv Investment) bool { return inv.ID == id })
	if len(s.data.Investments) == n {
		return fmt.Errorf("investment %q not found", id)
	}
	return s.save()
}

// AddAccount validates and appends an account.
func (s *Store) AddAccount(a Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Accounts = append(s.data.Accounts, a)
	return s.save()
}

// UpdateAccount applies a partial update and returns the updated record.
func (s *Store) UpdateAccount(id string, patch AccountPatch) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.data.Accounts, func(a Account) bool { return a.ID == id })
	if i < 0 {
		return Account{}, fmt.Errorf("account %q not found", id)
	}
	updated := s.data.Accounts[i]
	patch.apply(&updated)
	if err := updated.Validate(); err != nil {
		return Account{}, err
	}
	s.data.Accounts[i] = updated
	return updated, s.save()
}

// DeleteAccount removes an account by id.
func (s *Store) DeleteAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.data.Accounts)
	s.data.Accounts = slices.DeleteFunc(s.data.Accounts, func(a Account) bool { return a.ID == id })
	if len(s.data.Accounts) == n {
		return fmt.Errorf("account %q not found", id)
	}
	return s.save()
}

// Replace swaps the whole data set, typically after an import.
func (s *Store) Replace(data Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.sortTransactions()
	return s.save()
}

// Clear removes every record.
func (s *Store) Clear() error {
	return s.Replace(Data{})
}

// Snapshot returns a deep-enough copy of the whole data set for export.
func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Data{
		Transactions: slices.Clone(s.data.Transactions),
		Investments:  slices.Clone(s.data.Investments),
		Accounts:     slices.Clone(s.data.Accounts),
	}
}
