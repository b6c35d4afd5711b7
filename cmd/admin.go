package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// adminCmd is the top-level command for administrative operations.
type adminCmd struct{}

func (*adminCmd) Name() string     { return "admin" }
func (*adminCmd) Synopsis() string { return "administrative commands" }
func (*adminCmd) Usage() string {
	return `admin <subcommand> <options>

Administrative commands, for sessions with the admin role.
`
}
func (c *adminCmd) SetFlags(f *flag.FlagSet) {}

func (c *adminCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "admin")
	commander.Register(&adminUsersCmd{}, "")
	commander.Register(&adminUserCmd{}, "")
	commander.Register(&adminUpdateCmd{}, "")
	commander.Register(&adminResetPasswordCmd{}, "")
	commander.Register(&adminAdjustCmd{}, "")
	commander.Register(&adminStatsCmd{}, "")
	commander.Register(&adminRatesCmd{}, "")
	return commander.Execute(ctx, args...)
}
