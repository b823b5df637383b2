package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	typ         string
	amount      string
	currency    string
	category    string
	description string
	date        string
	account     string
	tags        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `fd add -a <amount> [-t <type>] [-c <currency>] [-cat <category>] [-d <description>] [-on <date>]

  Records a transaction. The category is resolved against the transaction
  type; an unknown category is kept as a freeform label.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Transaction type (income, expense, investment, transfer, asset, liability).")
	f.StringVar(&c.amount, "a", "", "Amount, always non-negative. The type carries the sign.")
	f.StringVar(&c.currency, "c", "HKD", "Currency code of the amount.")
	f.StringVar(&c.category, "cat", "other", "Category of the transaction.")
	f.StringVar(&c.description, "d", "", "Free text description.")
	f.StringVar(&c.date, "on", dashboard.Today().String(), "Date of the transaction.")
	f.StringVar(&c.account, "account", "", "Account name the transaction belongs to.")
	f.StringVar(&c.tags, "tags", "", "Comma separated tags.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := dashboard.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	on, err := dashboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := dashboard.NewTransaction(t, amount, dashboard.Currency(strings.ToUpper(c.currency)), c.category, c.description, on)
	tx.Account = c.account
	if c.tags != "" {
		for _, tag := range strings.Split(c.tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tx.Tags = append(tx.Tags, tag)
			}
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	if err := store.AddTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %s (%s)\n", tx.Type, dashboard.FormatMoney(tx.Amount, tx.Currency), tx.Date, tx.ID)
	return subcommands.ExitSuccess
}
