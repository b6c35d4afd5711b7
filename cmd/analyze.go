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

type analyzeCmd struct {
	currency string
	month    string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "display spending and income frequencies" }
func (*analyzeCmd) Usage() string {
	return `mbk analyze -c <currency> [-m <YYYY-MM>]

  Displays how often each spending category and each income source occurred,
  for one currency, optionally restricted to a month.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", mbank.ReferenceCurrency, "Currency of the account to analyze.")
	f.StringVar(&c.month, "m", "", "Month filter in YYYY-MM format. All history by default.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report, err := a.analytics.Frequencies(ctx, scope)
	if err != nil {
		return exitOn(err)
	}
	a.sync.Activate(mbank.ViewFrequencies)
	printMarkdown(renderer.FrequenciesMarkdown(report))
	return subcommands.ExitSuccess
}
