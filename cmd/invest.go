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

type investCmd struct {
	add      bool
	name     string
	typ      string
	quantity string
	price    string
	date     string
	currency string
	mark     string
	remove   string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "list, add, reprice or delete investments" }
func (*investCmd) Usage() string {
	return `fd invest [-add -name <name> -t <type> -q <quantity> -price <price> [-on <date>] [-c <currency>]]
          [-mark <id> -price <price>] [-rm <id>]

  Without flags, lists all investments with their gains. With -add, records
  an investment at its purchase price. With -mark, updates the current
  price of an existing investment.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Record a new investment.")
	f.StringVar(&c.name, "name", "", "Investment name.")
	f.StringVar(&c.typ, "t", "stocks", "Investment type (stocks, bonds, crypto, real_estate, mutual_funds, other).")
	f.StringVar(&c.quantity, "q", "1", "Number of units held.")
	f.StringVar(&c.price, "price", "", "Unit price. Purchase price with -add, current price with -mark.")
	f.StringVar(&c.date, "on", dashboard.Today().String(), "Purchase date.")
	f.StringVar(&c.currency, "c", "USD", "Currency of the price.")
	f.StringVar(&c.mark, "mark", "", "Update the current price of the investment with this id.")
	f.StringVar(&c.remove, "rm", "", "Delete the investment with this id.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.remove != "":
		if err := store.DeleteInvestment(c.remove); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted investment %s\n", c.remove)

	case c.mark != "":
		price, err := decimal.NewFromString(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
		inv, err := store.UpdateInvestment(c.mark, dashboard.InvestmentPatch{CurrentPrice: &price})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Marked %q at %s (%s)\n", inv.Name, dashboard.FormatMoney(inv.CurrentPrice, inv.Currency), inv.GainLossPercent().SignedString())

	case c.add:
		t, err := dashboard.ParseInvestmentType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		quantity, err := decimal.NewFromString(c.quantity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
			return subcommands.ExitUsageError
		}
		price, err := decimal.NewFromString(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
		on, err := dashboard.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		inv := dashboard.NewInvestment(c.name, t, quantity, price, on, dashboard.Currency(strings.ToUpper(c.currency)))
		if err := store.AddInvestment(inv); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded investment %q worth %s (%s)\n", inv.Name, dashboard.FormatMoney(inv.PurchaseValue(), inv.Currency), inv.ID)

	default:
		printMarkdown(renderer.InvestmentsMarkdown(store.Investments()))
	}

	return subcommands.ExitSuccess
}
