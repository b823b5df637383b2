package dashboard

// this file contains functions to handle the backup import/export format.
// It should remain human readable, single file and round-trippable.

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Backup is the single-file export format: the three collections plus the
// export timestamp.
type Backup struct {
	Transactions []Transaction `json:"transactions"`
	Investments  []Investment  `json:"investments"`
	Accounts     []Account     `json:"accounts"`
	ExportDate   time.Time     `json:"exportDate"`
}

// BackupFilename returns the default name for a backup written on 'on'.
func BackupFilename(on Date) string {
	return fmt.Sprintf("Im-broke-backup-%s.json", on)
}

// Export writes the data set to 'w' as an indented JSON document.
func Export(w io.Writer, data Data) error {
	b := Backup{
		Transactions: data.Transactions,
		Investments:  data.Investments,
		Accounts:     data.Accounts,
		ExportDate:   time.Now(),
	}
	if b.Transactions == nil {
		b.Transactions = []Transaction{}
	}
	if b.Investments == nil {
		b.Investments = []Investment{}
	}
	if b.Accounts == nil {
		b.Accounts = []Account{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// Import reads a backup previously written by Export and returns the data
// set it carried. Every record is validated: a backup either imports whole
// or not at all.
func Import(r io.Reader) (Data, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Data{}, fmt.Errorf("cannot parse backup: %w", err)
	}
	data := Data{
		Transactions: b.Transactions,
		Investments:  b.Investments,
		Accounts:     b.Accounts,
	}
	for _, tx := range data.Transactions {
		if err := tx.Validate(); err != nil {
			return Data{}, fmt.Errorf("invalid backup: %w", err)
		}
	}
	for _, inv := range data.Investments {
		if err := inv.Validate(); err != nil {
			return Data{}, fmt.Errorf("invalid backup: %w", err)
		}
	}
	for _, a := range data.Accounts {
		if err := a.Validate(); err != nil {
			return Data{}, fmt.Errorf("invalid backup: %w", err)
		}
	}
	return data, nil
}
