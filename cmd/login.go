package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	name     string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and open a session" }
func (*loginCmd) Usage() string {
	return `mbk login -u <username> -p <password>

  Logs in on the bank server and keeps the session for the following commands.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "u", "", "Username.")
	f.StringVar(&c.password, "p", "", "Password.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -u and -p flags are required.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.client.Login(ctx, c.name, c.password); err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	fmt.Printf("Welcome back, %s.\n", a.store.Session().Name)
	return subcommands.ExitSuccess
}
