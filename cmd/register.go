package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type registerCmd struct {
	name     string
	password string
	initial  string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `mbk register -u <username> -p <password> [-a <initial_deposit>]

  Creates a new account on the bank server, with an optional initial TWD deposit.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Username.")
	f.StringVar(&c.password, "p", "", "Password.")
	f.StringVar(&c.initial, "a", "0", "Initial deposit in TWD.")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -p flags are required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.client.Register(ctx, c.name, c.password, amount); err != nil {
		return exitOn(err)
	}

	fmt.Printf("Account %q created. Log in with 'mbk login'.\n", c.name)
	return subcommands.ExitSuccess
}
