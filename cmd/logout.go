package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the current session" }
func (*logoutCmd) Usage() string {
	return `mbk logout

  Closes the session on the server and forgets the local session cookie.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.client.Logout(ctx); err != nil {
		return exitOn(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
