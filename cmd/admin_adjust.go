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

type adminAdjustCmd struct {
	id       int
	currency string
	amount   string
	note     string
	yes      bool
}

func (*adminAdjustCmd) Name() string     { return "adjust" }
func (*adminAdjustCmd) Synopsis() string { return "manually adjust a user's balance" }
func (*adminAdjustCmd) Usage() string {
	return `admin adjust -id <user_id> -c <currency> -a <amount> -note <text> [-y]

  Applies a manual balance adjustment on a user's wallet. A positive amount
  behaves like a deposit, a negative one like a withdrawal. The note is
  mandatory, it is the audit trail of the adjustment.
`
}

func (c *adminAdjustCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the user.")
	f.StringVar(&c.currency, "c", "", "Currency of the adjustment.")
	f.StringVar(&c.amount, "a", "", "Signed amount of the adjustment.")
	f.StringVar(&c.note, "note", "", "Reason of the adjustment.")
	f.BoolVar(&c.yes, "y", false, "Adjust without asking for confirmation.")
}

func (c *adminAdjustCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	question := fmt.Sprintf("Adjust user %d by %s?", c.id, mbank.M(amount, c.currency))
	if !c.yes && !confirm(question) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	if err := a.roster.Adjust(ctx, c.id, c.currency, amount, c.note); err != nil {
		return exitOn(err)
	}
	fmt.Printf("Adjusted user %d by %s.\n", c.id, mbank.M(amount, c.currency))
	return subcommands.ExitSuccess
}
