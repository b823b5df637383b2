package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace all records from a backup file" }
func (*importCmd) Usage() string {
	return `fd import -f <file>

  Replaces all transactions, investments and accounts with the contents of
  a backup file. A backup with any invalid record is rejected whole and
  the current data is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Backup file to import.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	data, err := dashboard.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing backup %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}
	if err := store.Replace(data); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions, %d investments, %d accounts from %s\n",
		len(data.Transactions), len(data.Investments), len(data.Accounts), c.file)
	return subcommands.ExitSuccess
}
