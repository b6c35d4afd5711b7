package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/renderer"
	"github.com/google/subcommands"
)

type cashflowCmd struct {
	currency string
	month    string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display a cash flow analysis" }
func (*cashflowCmd) Usage() string {
	return `mbk cashflow -c <currency> [-m <YYYY-MM>]

  Displays income, spending, the daily flow and the flow sources for one
  currency, optionally restricted to a month.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", mbank.ReferenceCurrency, "Currency of the account to analyze.")
	f.StringVar(&c.month, "m", "", "Month filter in YYYY-MM format. All history by default.")
}

func (c *cashflowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	scope := mbank.Scope{Currency: c.currency, Month: month}
	report, err := a.analytics.CashFlow(ctx, scope)
	if err != nil {
		return exitOn(err)
	}
	a.sync.Activate(mbank.ViewCashFlow)
	printMarkdown(renderer.CashFlowMarkdown(scope.String(), report))
	return subcommands.ExitSuccess
}
