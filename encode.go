package dashboard

// This file persists the data set in a folder of plain JSON files, one per
// collection, in a way that is still human-readable and git-friendly.

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	transactionsFilename = "transactions.json"
	investmentsFilename  = "investments.json"
	accountsFilename     = "accounts.json"
)

// DirStore persists each collection as an indented JSON array in its own
// file under Dir.
//
// Loading is forgiving: a missing or unreadable file falls back to the Seed
// collection with a log line, so a fresh or damaged data folder still
// produces a usable store.
type DirStore struct {
	Dir  string
	Seed Data
}

// NewDirStore returns a DirStore over the folder, seeded with the default
// data built from the environment.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir, Seed: SeedData(SeedFromEnv())}
}

// load reads one collection file into out. It reports whether the fallback
// should be used instead.
func (d *DirStore) load(filename string, out any) (fallback bool) {
	path := filepath.Join(d.Dir, filename)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("warning, %s does not exist, starting from seed data", path)
		} else {
			log.Printf("warning, cannot read %s (%v), starting from seed data", path, err)
		}
		return true
	}
	if err := json.Unmarshal(content, out); err != nil {
		log.Printf("warning, %s is corrupted (%v), starting from seed data", path, err)
		return true
	}
	return false
}

// Load reads the three collection files, degrading per collection to the
// seed data.
func (d *DirStore) Load() (Data, error) {
	var data Data
	if d.load(transactionsFilename, &data.Transactions) {
		data.Transactions = d.Seed.Transactions
	}
	if d.load(investmentsFilename, &data.Investments) {
		data.Investments = d.Seed.Investments
	}
	if d.load(accountsFilename, &data.Accounts) {
		data.Accounts = d.Seed.Accounts
	}
	return data, nil
}

// saveFile writes one collection as an indented JSON array. Nil slices are
// written as empty arrays so the files always parse.
func (d *DirStore) saveFile(filename string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal %s: %w", filename, err)
	}
	path := filepath.Join(d.Dir, filename)
	if err := os.WriteFile(path, append(content, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// Save writes the three collection files.
func (d *DirStore) Save(data Data) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create data folder %q: %w", d.Dir, err)
	}
	if data.Transactions == nil {
		data.Transactions = []Transaction{}
	}
	if data.Investments == nil {
		data.Investments = []Investment{}
	}
	if data.Accounts == nil {
		data.Accounts = []Account{}
	}
	if err := d.saveFile(transactionsFilename, data.Transactions); err != nil {
		return err
	}
	if err := d.saveFile(investmentsFilename, data.Investments); err != nil {
		return err
	}
	return d.saveFile(accountsFilename, data.Accounts)
}

var _ Persister = (*DirStore)(nil)
