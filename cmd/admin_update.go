package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type adminUpdateCmd struct {
	id     int
	email  string
	role   string
	active bool
}

func (*adminUpdateCmd) Name() string     { return "update" }
func (*adminUpdateCmd) Synopsis() string { return "update a user's profile" }
func (*adminUpdateCmd) Usage() string {
	return `admin update -id <user_id> -email <address> -role <customer|admin> [-active=false]

  Replaces the email, role and active status of a user. All three values are
  sent, so pass the current value for fields that should not change.
`
}

func (c *adminUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the user to update.")
	f.StringVar(&c.email, "email", "", "Contact email address.")
	f.StringVar(&c.role, "role", "customer", "Role, customer or admin.")
	f.BoolVar(&c.active, "active", true, "Whether the account is active.")
}

func (c *adminUpdateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}
	if err := a.roster.Update(ctx, c.id, c.email, c.role, c.active); err != nil {
		return exitOn(err)
	}
	fmt.Printf("User %d updated.\n", c.id)
	return subcommands.ExitSuccess
}

type adminResetPasswordCmd struct {
	id  int
	yes bool
}

func (*adminResetPasswordCmd) Name() string     { return "reset-password" }
func (*adminResetPasswordCmd) Synopsis() string { return "reset a user's password" }
func (*adminResetPasswordCmd) Usage() string {
	return `admin reset-password -id <user_id> [-y]

  Resets the password of a user and prints the generated one. The new
  password is shown only once and is not delivered to the user.
`
}

func (c *adminResetPasswordCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the user.")
	f.BoolVar(&c.yes, "y", false, "Reset without asking for confirmation.")
}

func (c *adminResetPasswordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return exitOn(err)
	}
	if err := a.requireSession(ctx); err != nil {
		return exitOn(err)
	}

	if !c.yes && !confirm(fmt.Sprintf("Reset the password of user %d?", c.id)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	password, err := a.roster.ResetPassword(ctx, c.id)
	if err != nil {
		return exitOn(err)
	}
	fmt.Printf("New password for user %d: %s\n", c.id, password)
	return subcommands.ExitSuccess
}
