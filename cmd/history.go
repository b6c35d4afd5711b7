package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mbank"
	"github.com/google/subcommands"
)

type historyCmd struct {
	month string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transactions of the account" }
func (*historyCmd) Usage() string {
	return `mbk history [-m <YYYY-MM>]

  Lists the transactions of the logged-in user, optionally restricted to a month.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month filter in YYYY-MM format. All history by default.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	historyMonth = month
	return exitOn(a.show(ctx, mbank.ViewHistory))
}

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transactions as CSV" }
func (*exportCmd) Usage() string {
	return `mbk export [-o <file>]

  Streams the server-generated CSV export of all transactions to the given
  file, or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file. Stdout by default.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	w := os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := a.client.ExportTransactions(ctx, w); err != nil {
		return exitOn(err)
	}
	if c.out != "" {
		fmt.Printf("Exported transactions to %s\n", c.out)
	}
	return subcommands.ExitSuccess
}
