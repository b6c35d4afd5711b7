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

type withdrawCmd struct {
	amount   string
	currency string
	date     string
	note     string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash from a wallet" }
func (*withdrawCmd) Usage() string {
	return `mbk withdraw -a <amount> -c <currency> [-d <date>] [-note <text>]

  Withdraws an amount from the wallet of the given currency. The currency
  must be one the user already holds.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount to withdraw.")
	f.StringVar(&c.currency, "c", "", "Currency of the withdrawal, e.g. TWD.")
	f.StringVar(&c.date, "d", "", "Value date, defaults to today.")
	f.StringVar(&c.note, "note", "", "Spending category or free-form note.")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	msg, err := a.dispatch.Withdraw(ctx, amount, c.currency, on, c.note)
	if err != nil {
		return exitOn(err)
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
