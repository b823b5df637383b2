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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard summary cards" }
func (*summaryCmd) Usage() string {
	return `fd summary [-p <period>] [-d <date>]

  Displays the summary cards: income, expenses, assets, liabilities and net
  worth over the period, with month-over-month trends.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Period filter (all, yearly, monthly, weekly).")
	f.StringVar(&c.date, "d", dashboard.Today().String(), "Reference date for the summary.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	summary := dashboard.Summarize(store.Transactions(), period, on)
	printMarkdown(renderer.SummaryMarkdown(&summary, DisplayCurrency()))

	return subcommands.ExitSuccess
}
