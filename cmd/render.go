package cmd

import (
	"context"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/date"
	"github.com/etnz/mbank/renderer"
)

// The view handlers below rebuild a view from the server and print it. They
// run on first display and again after every mutation, so the terminal always
// shows post-mutation figures.

// historyMonth is the filter of the last displayed history view.
var historyMonth date.Month

func (a *app) renderWallets(ctx context.Context) error {
	printMarkdown(renderer.SessionMarkdown(a.store.Session()))
	return nil
}

func (a *app) renderHistory(ctx context.Context) error {
	records, err := a.client.Transactions(ctx, historyMonth)
	if err != nil {
		return err
	}
	printMarkdown(renderer.TransactionsMarkdown(records))
	return nil
}

func (a *app) renderRates(ctx context.Context) error {
	rates, err := a.client.ExchangeRates(ctx)
	if err != nil {
		return err
	}
	printMarkdown(renderer.RatesMarkdown(rates))
	return nil
}

func (a *app) renderCashFlow(ctx context.Context) error {
	scope := a.analytics.LastCashFlowScope()
	report, err := a.analytics.CashFlow(ctx, scope)
	if err != nil {
		return err
	}
	printMarkdown(renderer.CashFlowMarkdown(scope.String(), report))
	return nil
}

func (a *app) renderFrequencies(ctx context.Context) error {
	report, err := a.analytics.Frequencies(ctx, a.analytics.LastFrequencyScope())
	if err != nil {
		return err
	}
	printMarkdown(renderer.FrequenciesMarkdown(report))
	return nil
}

func (a *app) renderBudget(ctx context.Context) error {
	view, err := a.analytics.Budget(ctx, a.analytics.LastBudgetScope())
	if err != nil {
		return err
	}
	printMarkdown(renderer.BudgetMarkdown(view))
	return nil
}

// show activates a view and renders it once.
func (a *app) show(ctx context.Context, v mbank.View) error {
	a.sync.Activate(v)
	return a.sync.Refresh(ctx, v)
}
