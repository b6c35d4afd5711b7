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

type exchangeCmd struct {
	from   string
	to     string
	amount string
	date   string
	yes    bool
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "convert money between two wallets" }
func (*exchangeCmd) Usage() string {
	return `mbk exchange -from <currency> -to <currency> -a <amount> [-d <date>] [-y]

  Converts an amount between two of the user's wallets at the current rate.
  A preview quote is shown before submitting; -y skips the confirmation.
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Currency to convert from.")
	f.StringVar(&c.to, "to", "", "Currency to convert to.")
	f.StringVar(&c.amount, "a", "", "Amount to convert, in the source currency.")
	f.StringVar(&c.date, "d", "", "Value date, defaults to today.")
	f.BoolVar(&c.yes, "y", false, "Submit without asking for confirmation.")
}

func (c *exchangeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Preview the conversion before committing it.
	q, shown, err := a.quotes.Preview(ctx, c.from, c.to, amount)
	if err != nil {
		return exitOn(err)
	}
	if shown {
		fmt.Printf("%s = %s", mbank.M(q.FromAmount, q.From), mbank.M(q.ToAmount, q.To))
		if q.Rate != 0 {
			fmt.Printf(" (rate %.4f)", q.Rate)
		}
		fmt.Println()
		if !c.yes && !confirm("Proceed with the exchange?") {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	a.sync.Activate(mbank.ViewWallets)

	msg, err := a.dispatch.Exchange(ctx, c.from, c.to, amount, on)
	if err != nil {
		return exitOn(err)
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
