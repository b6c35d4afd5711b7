package mbank

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Scope is the (currency, optional month) selection pair the analytics views
// are keyed by.
type Scope struct {
	Currency string
	Month    date.Month // zero means no month filter
}

func (s Scope) String() string {
	if s.Month.IsZero() {
		return s.Currency
	}
	return fmt.Sprintf("%s %s", s.Currency, s.Month)
}

// FrequencyReport merges the two independent halves of the spend/income
// frequency view. Either half may be empty without affecting the other.
type FrequencyReport struct {
	Scope    Scope
	Spending Breakdown
	Income   Breakdown
}

// BudgetView pairs the editable budget mapping with the read-only comparison.
type BudgetView struct {
	Scope      Scope
	Set        BudgetSet
	Comparison []BudgetComparison
}

// AnalyticsCoordinator fetches and assembles the data series for the three
// analytics views. It remembers the last-used scope of each view so ViewSync
// can re-run a visible view after a mutation.
type AnalyticsCoordinator struct {
	svc Service

	lastCashFlow Scope
	lastFreq     Scope
	lastBudget   Scope
}

func NewAnalyticsCoordinator(svc Service) *AnalyticsCoordinator {
	return &AnalyticsCoordinator{svc: svc}
}

// CashFlow fetches the currency- and optional-month-scoped summary. An empty
// summary is not an error: the caller shows a "no data" status instead.
func (a *AnalyticsCoordinator) CashFlow(ctx context.Context, scope Scope) (CashFlowReport, error) {
	if err := validateCurrency(scope.Currency); err != nil {
		return CashFlowReport{}, err
	}
	a.lastCashFlow = scope
	report, err := a.svc.CashFlow(ctx, scope.Currency, scope.Month)
	if err != nil {
		return CashFlowReport{}, fmt.Errorf("cash-flow analysis for %s: %w", scope, err)
	}
	return report, nil
}

// Frequencies issues the spending and income breakdown lookups in parallel;
// they target disjoint data, so no ordering is required between them.
func (a *AnalyticsCoordinator) Frequencies(ctx context.Context, scope Scope) (FrequencyReport, error) {
	if err := validateCurrency(scope.Currency); err != nil {
		return FrequencyReport{}, err
	}
	a.lastFreq = scope
	report := FrequencyReport{Scope: scope}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Spending, err = a.svc.AnalyzeSpending(ctx, scope.Currency, scope.Month)
		return err
	})
	g.Go(func() (err error) {
		report.Income, err = a.svc.AnalyzeIncome(ctx, scope.Currency, scope.Month)
		return err
	})
	if err := g.Wait(); err != nil {
		return FrequencyReport{}, fmt.Errorf("frequency analysis for %s: %w", scope, err)
	}
	return report, nil
}

// Budget issues the budget mapping and budget-vs-spent lookups in parallel.
// A zero month defaults to the current month, like the budget form does.
func (a *AnalyticsCoordinator) Budget(ctx context.Context, scope Scope) (BudgetView, error) {
	if err := validateCurrency(scope.Currency); err != nil {
		return BudgetView{}, err
	}
	if scope.Month.IsZero() {
		scope.Month = date.ThisMonth()
	}
	a.lastBudget = scope
	view := BudgetView{Scope: scope}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		view.Set, err = a.svc.Budgets(ctx, scope.Month, scope.Currency)
		return err
	})
	g.Go(func() (err error) {
		view.Comparison, err = a.svc.SpendingVsBudget(ctx, scope.Month, scope.Currency)
		return err
	})
	if err := g.Wait(); err != nil {
		return BudgetView{}, fmt.Errorf("budget view for %s: %w", scope, err)
	}
	return view, nil
}

// SaveBudgets saves one upsert per category. The batch is not atomic: on
// partial failure the successful upserts are not rolled back, a single
// aggregate error is returned and the caller must re-open the view to see
// true server state.
func (a *AnalyticsCoordinator) SaveBudgets(ctx context.Context, scope Scope, amounts map[string]decimal.Decimal) error {
	if err := validateCurrency(scope.Currency); err != nil {
		return err
	}
	if scope.Month.IsZero() {
		scope.Month = date.ThisMonth()
	}
	var errs []error
	for category, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, fmt.Errorf("budget for %q: %w", category, errAmountNotPositive))
			continue
		}
		if err := a.svc.SetBudget(ctx, scope.Month, scope.Currency, category, amount); err != nil {
			errs = append(errs, fmt.Errorf("budget for %q: %w", category, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("some budgets were not saved: %w", errors.Join(errs...))
	}
	return nil
}

// LastCashFlowScope, LastFrequencyScope and LastBudgetScope expose the
// last-used scoping inputs for ViewSync handlers.
func (a *AnalyticsCoordinator) LastCashFlowScope() Scope  { return a.lastCashFlow }
func (a *AnalyticsCoordinator) LastFrequencyScope() Scope { return a.lastFreq }
func (a *AnalyticsCoordinator) LastBudgetScope() Scope    { return a.lastBudget }
