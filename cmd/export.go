package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all records to a backup file" }
func (*exportCmd) Usage() string {
	return `fd export [-o <file>]

  Writes all transactions, investments and accounts to a JSON backup file.
  The default file name carries today's date.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to a dated backup name).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}

	filename := c.output
	if filename == "" {
		filename = dashboard.BackupFilename(dashboard.Today())
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := dashboard.Export(out, store.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported all records to %s\n", filename)
	return subcommands.ExitSuccess
}
