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

type txCmd struct {
	period string
	typ    string
	date   string
	head   int
	tail   int
	remove string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list or delete transactions" }
func (*txCmd) Usage() string {
	return `fd tx [-p <period>] [-t <type>] [-d <date>] [-head <n>] [-tail <n>] [-rm <id>]

  Lists transactions newest first, with options for filtering and limiting
  the output. With -rm, deletes the transaction with that id instead.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Period filter (all, yearly, monthly, weekly).")
	f.StringVar(&p.typ, "t", "", "Only show transactions of this type.")
	f.StringVar(&p.date, "d", "", "Reference date for the period filter (defaults to today).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
	f.StringVar(&p.remove, "rm", "", "Delete the transaction with this id.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}

	if p.remove != "" {
		if err := store.DeleteTransaction(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", p.remove)
		return subcommands.ExitSuccess
	}

	ref := dashboard.Today()
	if p.date != "" {
		ref, err = dashboard.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	period, err := dashboard.ParsePeriod(p.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs := dashboard.FilterByPeriod(store.Transactions(), period, ref)
	if p.typ != "" {
		t, err := dashboard.ParseTransactionType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filtered := txs[:0:0]
		for _, tx := range txs {
			if tx.Type == t {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}

	if p.head > 0 && len(txs) > p.head {
		txs = txs[:p.head]
	}
	if p.tail > 0 && len(txs) > p.tail {
		txs = txs[len(txs)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
