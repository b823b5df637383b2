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

type trendsCmd struct {
	months int
	date   string
}

func (*trendsCmd) Name() string     { return "trends" }
func (*trendsCmd) Synopsis() string { return "display monthly trends and key metrics" }
func (*trendsCmd) Usage() string {
	return `fd trends [-n <months>] [-d <date>]

  Displays the income, expense and savings trend over the last months,
  ending on the reference month, with the analytics key metrics.
`
}

func (c *trendsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 6, "Number of months in the trend window.")
	f.StringVar(&c.date, "d", dashboard.Today().String(), "Reference date, the window ends on its month.")
}

func (c *trendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be positive.")
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

	txs := store.Transactions()
	trends := dashboard.MonthlyTrends(txs, c.months, on)
	avg := dashboard.AverageMetrics(txs, c.months)
	printMarkdown(renderer.TrendsMarkdown(trends, avg, dashboard.Comparison(trends), DisplayCurrency()))

	return subcommands.ExitSuccess
}
