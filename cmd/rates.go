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
)

type ratesCmd struct {
	update     bool
	currencies string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or refresh exchange rates" }
func (*ratesCmd) Usage() string {
	return `fd rates [-update] [-c <CODE,CODE,...>]

  Displays the exchange rate table. With -update, fetches fresh daily rates
  for every pair of the listed currencies first. Fetched rates are cached
  for the day.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "update", false, "Fetch fresh rates before displaying.")
	f.StringVar(&c.currencies, "c", "", "Comma separated currency codes to refresh (defaults to the built-in ones).")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates := dashboard.NewRates()

	if c.update {
		var currencies []dashboard.Currency
		for _, code := range strings.Split(c.currencies, ",") {
			if code = strings.TrimSpace(code); code != "" {
				currencies = append(currencies, dashboard.Currency(strings.ToUpper(code)))
			}
		}
		if err := dashboard.RefreshRates(rates, currencies...); err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
	}

	printMarkdown(renderer.RatesMarkdown(rates.All()))
	return subcommands.ExitSuccess
}
