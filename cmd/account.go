package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/AllenCyhCHAN/financial-dashboard/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type accountCmd struct {
	add      bool
	name     string
	typ      string
	balance  string
	currency string
	remove   string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "list, add or delete accounts" }
func (*accountCmd) Usage() string {
	return `fd account [-add -name <name> -t <type> -b <balance> [-c <currency>]] [-rm <id>]

  Without flags, lists all accounts. With -add, creates an account. With
  -rm, deletes the account with that id.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new account.")
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.typ, "t", "checking", "Account type (checking, savings, investment, credit, debit).")
	f.StringVar(&c.balance, "b", "0", "Opening balance.")
	f.StringVar(&c.currency, "c", "HKD", "Currency of the balance.")
	f.StringVar(&c.remove, "rm", "", "Delete the account with this id.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.remove != "":
		if err := store.DeleteAccount(c.remove); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted account %s\n", c.remove)

	case c.add:
		t, err := dashboard.ParseAccountType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		balance, err := decimal.NewFromString(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance %q: %v\n", c.balance, err)
			return subcommands.ExitUsageError
		}
		a := dashboard.NewAccount(c.name, t, balance, dashboard.Currency(strings.ToUpper(c.currency)))
		if err := store.AddAccount(a); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created account %q (%s)\n", a.Name, a.ID)

	default:
		printMarkdown(renderer.AccountsMarkdown(store.Accounts()))
	}

	return subcommands.ExitSuccess
}
