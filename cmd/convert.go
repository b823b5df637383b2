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

type convertCmd struct {
	amount string
	from   string
	to     string
	update bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `fd convert -a <amount> -from <CODE> -to <CODE> [-update]

  Converts an amount between currencies. A pair with no known rate falls
  back to USD as a pivot, then to the identity rate, so the command always
  prints a result.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount to convert.")
	f.StringVar(&c.from, "from", "HKD", "Source currency code.")
	f.StringVar(&c.to, "to", "USD", "Target currency code.")
	f.BoolVar(&c.update, "update", false, "Fetch fresh rates for the pair first.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	from := dashboard.Currency(strings.ToUpper(c.from))
	to := dashboard.Currency(strings.ToUpper(c.to))

	rates := dashboard.NewRates()
	if c.update {
		if err := dashboard.RefreshRates(rates, from, to); err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
	}

	fmt.Print(renderer.ConversionMarkdown(rates.Convert(amount, from, to)))
	return subcommands.ExitSuccess
}
