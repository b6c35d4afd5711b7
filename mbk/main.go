package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/mbank/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Complete()
// returns immediately when not running as a completion hook.
func completion() {
	currencies := predict.Set{"TWD", "USD", "JPY", "EUR", "CNY", "HKD", "GBP", "AUD", "CAD", "KRW", "SGD"}
	scoped := map[string]complete.Predictor{"c": currencies, "m": predict.Nothing}

	c := &complete.Command{
		Flags: map[string]complete.Predictor{"server": predict.Nothing},
		Sub: map[string]*complete.Command{
			"login":    {Flags: map[string]complete.Predictor{"u": predict.Nothing, "p": predict.Nothing}},
			"register": {Flags: map[string]complete.Predictor{"u": predict.Nothing, "p": predict.Nothing, "a": predict.Nothing}},
			"logout":   {},
			"summary":  {},
			"profile":  {Flags: map[string]complete.Predictor{"email": predict.Nothing}},
			"passwd":   {},
			"deposit":  {Flags: map[string]complete.Predictor{"a": predict.Nothing, "c": currencies, "d": predict.Nothing}},
			"withdraw": {Flags: map[string]complete.Predictor{"a": predict.Nothing, "c": currencies, "d": predict.Nothing, "note": predict.Nothing}},
			"transfer": {Flags: map[string]complete.Predictor{"to": predict.Nothing, "a": predict.Nothing, "c": currencies, "d": predict.Nothing, "note": predict.Nothing}},
			"exchange": {Flags: map[string]complete.Predictor{"from": currencies, "to": currencies, "a": predict.Nothing, "d": predict.Nothing}},
			"quote":    {Flags: map[string]complete.Predictor{"from": currencies, "to": currencies, "a": predict.Nothing}},
			"history":  {Flags: map[string]complete.Predictor{"m": predict.Nothing}},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"cashflow": {Flags: scoped},
			"analyze":  {Flags: scoped},
			"budget":   {Flags: map[string]complete.Predictor{"c": currencies, "m": predict.Nothing, "set": predict.Nothing}},
			"rates":    {},
			"topic":    {Args: predict.Set{"readme", "accounts", "operations", "analytics", "budgets", "admin"}},
			"assist":   {},
			"admin": {Sub: map[string]*complete.Command{
				"users":          {},
				"user":           {Flags: map[string]complete.Predictor{"id": predict.Nothing, "m": predict.Nothing}},
				"update":         {Flags: map[string]complete.Predictor{"id": predict.Nothing, "email": predict.Nothing, "role": predict.Set{"customer", "admin"}, "active": predict.Nothing}},
				"reset-password": {Flags: map[string]complete.Predictor{"id": predict.Nothing}},
				"adjust":         {Flags: map[string]complete.Predictor{"id": predict.Nothing, "c": currencies, "a": predict.Nothing, "note": predict.Nothing}},
				"stats":          {},
				"rates":          {Flags: map[string]complete.Predictor{"set": predict.Nothing}},
			}},
		},
	}
	c.Complete("mbk")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
