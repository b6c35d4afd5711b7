package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mbank/renderer"
	"github.com/google/subcommands"
)

type adminUsersCmd struct{}

func (*adminUsersCmd) Name() string     { return "users" }
func (*adminUsersCmd) Synopsis() string { return "list all users" }
func (*adminUsersCmd) Usage() string {
	return `admin users

  Lists all users of the bank with their role and status.
`
}

func (c *adminUsersCmd) SetFlags(f *flag.FlagSet) {}

func (c *adminUsersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	users, err := a.roster.Users(ctx)
	if err != nil {
		return exitOn(err)
	}
	printMarkdown(renderer.UsersMarkdown(users))
	return subcommands.ExitSuccess
}

type adminUserCmd struct {
	id    int
	month string
}

func (*adminUserCmd) Name() string     { return "user" }
func (*adminUserCmd) Synopsis() string { return "inspect one user" }
func (*adminUserCmd) Usage() string {
	return `admin user -id <user_id> [-m <YYYY-MM>]

  Shows the profile, the wallets and the transactions of one user.
`
}

func (c *adminUserCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the user to inspect.")
	f.StringVar(&c.month, "m", "", "Month filter for the transactions, in YYYY-MM format.")
}

func (c *adminUserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
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

	detail, err := a.roster.Detail(ctx, c.id)
	if err != nil {
		return exitOn(err)
	}
	printMarkdown(renderer.UserDetailMarkdown(detail))

	records, err := a.roster.Transactions(ctx, c.id, month)
	if err != nil {
		return exitOn(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(records))
	return subcommands.ExitSuccess
}
