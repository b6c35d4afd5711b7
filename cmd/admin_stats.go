package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/mbank/renderer"
	"github.com/google/subcommands"
)

type adminStatsCmd struct{}

func (*adminStatsCmd) Name() string     { return "stats" }
func (*adminStatsCmd) Synopsis() string { return "display system-wide statistics" }
func (*adminStatsCmd) Usage() string {
	return `admin stats

  Displays the user counts and the total assets held by the bank, overall
  and per currency.
`
}

func (c *adminStatsCmd) SetFlags(f *flag.FlagSet) {}

func (c *adminStatsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	stats, err := a.roster.Stats(ctx)
	if err != nil {
		return exitOn(err)
	}
	printMarkdown(renderer.StatsMarkdown(stats))
	return subcommands.ExitSuccess
}

type adminRatesCmd struct {
	sets repeatable
}

func (*adminRatesCmd) Name() string     { return "rates" }
func (*adminRatesCmd) Synopsis() string { return "show or set the manual exchange rates" }
func (*adminRatesCmd) Usage() string {
	return `admin rates [-set <PAIR>=<rate> ...]

  Without flags, shows the manually-entered exchange rates the server falls
  back to when the live rate source is unavailable. With -set flags, saves
  the whole table first, e.g. -set USD_TWD=31.5.
`
}

func (c *adminRatesCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.sets, "set", "Rate to save, as <PAIR>=<rate>. Repeatable.")
}

func (c *adminRatesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	if len(c.sets) > 0 {
		rates := make(map[string]float64, len(c.sets))
		for _, s := range c.sets {
			pair, value, found := strings.Cut(s, "=")
			if !found || pair == "" {
				fmt.Fprintf(os.Stderr, "Error: invalid -set %q, expected <PAIR>=<rate>.\n", s)
				return subcommands.ExitUsageError
			}
			rate, err := strconv.ParseFloat(value, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid rate in -set %q: %v\n", s, err)
				return subcommands.ExitUsageError
			}
			rates[pair] = rate
		}
		if err := a.roster.SaveManualRates(ctx, rates); err != nil {
			return exitOn(err)
		}
		fmt.Println("Manual rates saved.")
	}

	rates, err := a.roster.ManualRates(ctx)
	if err != nil {
		return exitOn(err)
	}
	printMarkdown(renderer.ManualRatesMarkdown(rates))
	return subcommands.ExitSuccess
}
