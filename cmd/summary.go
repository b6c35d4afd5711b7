package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mbank"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the wallets and their total value" }
func (*summaryCmd) Usage() string {
	return `mbk summary

  Displays the wallets of the logged-in user and their total value in TWD.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}
	return exitOn(a.show(ctx, mbank.ViewWallets))
}
