// Package cmd implements the CLI application to operate a bank account.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/mbank"
	"github.com/etnz/mbank/bankapi"
	"github.com/etnz/mbank/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&registerCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&summaryCmd{}, "session")
	c.Register(&profileCmd{}, "session")
	c.Register(&passwdCmd{}, "session")

	c.Register(&depositCmd{}, "money")
	c.Register(&withdrawCmd{}, "money")
	c.Register(&transferCmd{}, "money")
	c.Register(&exchangeCmd{}, "money")
	c.Register(&quoteCmd{}, "money")
	c.Register(&historyCmd{}, "money")
	c.Register(&exportCmd{}, "money")

	c.Register(&cashflowCmd{}, "analytics")
	c.Register(&analyzeCmd{}, "analytics")
	c.Register(&budgetCmd{}, "analytics")
	c.Register(&ratesCmd{}, "analytics")

	c.Register(&adminCmd{}, "admin")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverFlag = flag.String("server", defaultServer(), "Base URL of the bank server")

func defaultServer() string {
	if s := os.Getenv("MBANK_SERVER"); s != "" {
		return s
	}
	return "http://localhost:5000"
}

// app wires the controllers around a single server client for the duration
// of one command.
type app struct {
	client    *bankapi.Client
	store     *mbank.SessionStore
	sync      *mbank.ViewSync
	dispatch  *mbank.ActionDispatcher
	quotes    *mbank.QuotePreviewer
	analytics *mbank.AnalyticsCoordinator
	roster    *mbank.AdminRosterController
}

func newApp() (*app, error) {
	client, err := bankapi.New(*serverFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid server %q: %w", *serverFlag, err)
	}
	store := mbank.NewSessionStore(client)
	sync := mbank.NewViewSync(store)
	a := &app{
		client:    client,
		store:     store,
		sync:      sync,
		dispatch:  mbank.NewActionDispatcher(client, store, sync),
		quotes:    mbank.NewQuotePreviewer(client),
		analytics: mbank.NewAnalyticsCoordinator(client),
		roster:    mbank.NewAdminRosterController(client),
	}

	// Each view re-renders itself when a mutation goes through, so commands
	// only have to activate the views they displayed.
	a.sync.Handle(mbank.ViewWallets, a.renderWallets)
	a.sync.Handle(mbank.ViewHistory, a.renderHistory)
	a.sync.Handle(mbank.ViewRates, a.renderRates)
	a.sync.Handle(mbank.ViewCashFlow, a.renderCashFlow)
	a.sync.Handle(mbank.ViewFrequencies, a.renderFrequencies)
	a.sync.Handle(mbank.ViewBudget, a.renderBudget)
	return a, nil
}

// requireSession refreshes the session and fails when the user is not logged in.
func (a *app) requireSession(ctx context.Context) error {
	return a.store.Refresh(ctx)
}

func exitOn(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if mbank.IsValidation(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal cannot be probed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks the user a yes/no question on stdin. Anything but an explicit
// yes declines.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func parseMonthFlag(s string) (date.Month, error) {
	if s == "" {
		return date.Month{}, nil
	}
	return date.ParseMonth(s)
}

func parseDateFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, nil
	}
	return date.Parse(s)
}
