package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/google/subcommands"
)

type setupCmd struct {
	file string
	date string
}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "run the initial setup from a JSON file" }
func (*setupCmd) Usage() string {
	return `fd setup -f <setup.json> [-on <date>]

  Creates the opening accounts, investments and debts described in the
  setup file, each mirrored by an opening balance transaction. The file
  holds {"accounts": [...], "investments": [...], "debts": [...]}.
`
}

func (c *setupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the setup JSON file.")
	f.StringVar(&c.date, "on", dashboard.Today().String(), "Date of the opening balances.")
}

func (c *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required.")
		return subcommands.ExitUsageError
	}
	on, err := dashboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening setup file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var setup dashboard.Setup
	if err := json.NewDecoder(in).Decode(&setup); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding setup file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if err := setup.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	if err := setup.Apply(store, on); err != nil {
		fmt.Fprintln(os.Stderr, "Error applying setup:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Setup complete: %d accounts, %d investments, %d debts.\n",
		len(setup.Accounts), len(setup.Investments), len(setup.Debts))
	return subcommands.ExitSuccess
}
