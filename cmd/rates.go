package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mbank"
	"github.com/google/subcommands"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the exchange rate board" }
func (*ratesCmd) Usage() string {
	return `mbk rates

  Displays the current exchange rates of the supported currencies against TWD.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}
	return exitOn(a.show(ctx, mbank.ViewRates))
}
