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

type transferCmd struct {
	to       string
	amount   string
	currency string
	date     string
	note     string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money to another user" }
func (*transferCmd) Usage() string {
	return `mbk transfer -to <username> -a <amount> -c <currency> [-d <date>] [-note <text>]

  Transfers an amount to another user of the bank, in the given currency.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Username of the recipient.")
	f.StringVar(&c.amount, "a", "", "Amount to transfer.")
	f.StringVar(&c.currency, "c", "", "Currency of the transfer, e.g. TWD.")
	f.StringVar(&c.date, "d", "", "Value date, defaults to today.")
	f.StringVar(&c.note, "note", "", "Free-form note attached to the transfer.")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	msg, err := a.dispatch.Transfer(ctx, c.to, amount, c.currency, on, c.note)
	if err != nil {
		return exitOn(err)
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
