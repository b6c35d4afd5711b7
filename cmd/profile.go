package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type profileCmd struct {
	email string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the account profile" }
func (*profileCmd) Usage() string {
	return `mbk profile [-email <address>]

  Without flags, shows the profile of the logged-in user.
  With -email, updates the contact address.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "New contact email address.")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	if c.email != "" {
		if err := a.dispatch.UpdateProfile(ctx, c.email); err != nil {
			return exitOn(err)
		}
		fmt.Println("Profile updated.")
	}

	s := a.store.Session()
	fmt.Printf("%s (%s)\n", s.Name, s.Role)
	fmt.Printf("email: %s\n", s.Email)
	return subcommands.ExitSuccess
}

type passwdCmd struct{}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change the account password" }
func (*passwdCmd) Usage() string {
	return `mbk passwd <old> <new>

  Changes the password of the logged-in user.
`
}

func (c *passwdCmd) SetFlags(f *flag.FlagSet) {}

func (c *passwdCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly two arguments <old> <new>.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}
	if err := a.dispatch.ChangePassword(ctx, f.Arg(0), f.Arg(1)); err != nil {
		return exitOn(err)
	}
	fmt.Println("Password changed.")
	return subcommands.ExitSuccess
}
