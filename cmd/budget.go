package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// repeatable is a repeatable string flag.
type repeatable []string

func (r *repeatable) String() string { return strings.Join(*r, ",") }
func (r *repeatable) Set(v string) error {
	*r = append(*r, v)
	return nil
}

type budgetCmd struct {
	currency string
	month    string
	sets     repeatable
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or set per-category budgets" }
func (*budgetCmd) Usage() string {
	return `mbk budget -c <currency> [-m <YYYY-MM>] [-set <Category>=<amount> ...]

  Without -set, shows the budgets and the budget-vs-spent comparison of the
  month. With one or more -set flags, saves those budgets first. Each -set is
  an independent upsert: a failing one does not roll back the others.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", mbank.ReferenceCurrency, "Currency of the budgets.")
	f.StringVar(&c.month, "m", "", "Month in YYYY-MM format. Current month by default.")
	f.Var(&c.sets, "set", "Budget to save, as <Category>=<amount>. Repeatable.")
}

func (c *budgetCmd) parseSets() (map[string]decimal.Decimal, error) {
	amounts := make(map[string]decimal.Decimal, len(c.sets))
	for _, s := range c.sets {
		category, value, found := strings.Cut(s, "=")
		if !found || category == "" {
			return nil, fmt.Errorf("invalid -set %q, expected <Category>=<amount>", s)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in -set %q: %w", s, err)
		}
		amounts[category] = amount
	}
	return amounts, nil
}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	amounts, err := c.parseSets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
	if len(amounts) > 0 {
		if err := a.analytics.SaveBudgets(ctx, scope, amounts); err != nil {
			// Some saves may have gone through; fall through to show the
			// server's state after reporting what failed.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	view, err := a.analytics.Budget(ctx, scope)
	if err != nil {
		return exitOn(err)
	}
	a.sync.Activate(mbank.ViewBudget)
	printMarkdown(renderer.BudgetMarkdown(view))
	return subcommands.ExitSuccess
}
