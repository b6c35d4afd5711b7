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

type quoteCmd struct {
	from   string
	to     string
	amount string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "preview a currency conversion" }
func (*quoteCmd) Usage() string {
	return `mbk quote -from <currency> -to <currency> -a <amount>

  Shows what an exchange would yield at the current rate, without moving money.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Currency to convert from.")
	f.StringVar(&c.to, "to", "", "Currency to convert to.")
	f.StringVar(&c.amount, "a", "", "Amount to convert, in the source currency.")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount := decimal.Zero
	if c.amount != "" {
		var err error
		amount, err = decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	q, shown, err := a.quotes.Preview(ctx, c.from, c.to, amount)
	if err != nil {
		return exitOn(err)
	}
	if !shown {
		// Incomplete input yields no preview, by the same rule as the
		// exchange form: nothing to show is not an error.
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s = %s", mbank.M(q.FromAmount, q.From), mbank.M(q.ToAmount, q.To))
	if q.Rate != 0 {
		fmt.Printf(" (rate %.4f)", q.Rate)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
