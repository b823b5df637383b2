package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/AllenCyhCHAN/financial-dashboard/renderer"
	"github.com/google/subcommands"
)

type breakdownCmd struct {
	typ    string
	period string
	date   string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display a category breakdown" }
func (*breakdownCmd) Usage() string {
	return `fd breakdown [-t expense|income] [-p <period>] [-d <date>]

  Displays totals per category, largest first, with each category's share
  of the filtered total.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Transaction type to break down (expense or income).")
	f.StringVar(&c.period, "p", "monthly", "Period filter (all, yearly, monthly, weekly).")
	f.StringVar(&c.date, "d", dashboard.Today().String(), "Reference date for the period filter.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := dashboard.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if t != dashboard.TypeExpense && t != dashboard.TypeIncome {
		fmt.Fprintf(os.Stderr, "Error: breakdown supports expense and income, not %s\n", t)
		return subcommands.ExitUsageError
	}
	period, err := dashboard.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := dashboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}

	txs := dashboard.FilterByPeriod(store.Transactions(), period, on)
	breakdown := dashboard.WithShares(dashboard.GroupByCategory(txs, t))
	printMarkdown(renderer.BreakdownMarkdown(t, breakdown, DisplayCurrency()))

	return subcommands.ExitSuccess
}
