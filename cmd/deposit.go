package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mbank"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	amount   string
	currency string
	date     string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash into a wallet" }
func (*depositCmd) Usage() string {
	return `mbk deposit -a <amount> -c <currency> [-d <date>]

  Deposits an amount into the wallet of the given currency, creating the
  wallet when it does not exist yet.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount to deposit.")
	f.StringVar(&c.currency, "c", "", "Currency of the deposit, e.g. TWD.")
	f.StringVar(&c.date, "d", "", "Value date, defaults to today.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}
	a.sync.Activate(mbank.ViewWallets)

	msg, err := a.dispatch.Deposit(ctx, amount, c.currency, on)
	if err != nil {
		return exitOn(err)
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
