package bankapi

import (
	"context"
	"net/url"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

func scopeQuery(currency string, month date.Month) url.Values {
	query := url.Values{}
	query.Set("currency", currency)
	if !month.IsZero() {
		query.Set("month", month.String())
	}
	return query
}

// CashFlow fetches the scoped cash-flow summary. An empty summary object is
// the server's way of saying "no data" and is passed through as such.
func (c *Client) CashFlow(ctx context.Context, currency string, month date.Month) (mbank.CashFlowReport, error) {
	var result struct {
		envelope
		Summary    mbank.CashFlowSummary `json:"summary"`
		Suggestion string                `json:"suggestion"`
	}
	if err := c.get(ctx, "/api/cash-flow-analysis", scopeQuery(currency, month), &result); err != nil {
		return mbank.CashFlowReport{}, err
	}
	if err := checked(result.envelope); err != nil {
		return mbank.CashFlowReport{}, err
	}
	return mbank.CashFlowReport{Summary: result.Summary, Suggestion: result.Suggestion}, nil
}

func (c *Client) analyze(ctx context.Context, path, currency string, month date.Month) (mbank.Breakdown, error) {
	var result struct {
		envelope
		Summary    map[string]int `json:"summary"`
		Message    string         `json:"message"`
		Suggestion string         `json:"suggestion"`
	}
	if err := c.get(ctx, path, scopeQuery(currency, month), &result); err != nil {
		return mbank.Breakdown{}, err
	}
	if err := checked(result.envelope); err != nil {
		return mbank.Breakdown{}, err
	}
	return mbank.Breakdown{Summary: result.Summary, Message: result.Message, Suggestion: result.Suggestion}, nil
}

func (c *Client) AnalyzeSpending(ctx context.Context, currency string, month date.Month) (mbank.Breakdown, error) {
	return c.analyze(ctx, "/api/analyze-spending", currency, month)
}

func (c *Client) AnalyzeIncome(ctx context.Context, currency string, month date.Month) (mbank.Breakdown, error) {
	return c.analyze(ctx, "/api/analyze-income", currency, month)
}

// Budgets returns the category list and the budgeted amount per category for
// a (month, currency) scope.
func (c *Client) Budgets(ctx context.Context, month date.Month, currency string) (mbank.BudgetSet, error) {
	query := url.Values{}
	query.Set("month", month.String())
	query.Set("currency", currency)
	var result struct {
		envelope
		Categories []string                   `json:"categories"`
		Budgets    map[string]decimal.Decimal `json:"budgets"`
	}
	if err := c.get(ctx, "/api/budgets", query, &result); err != nil {
		return mbank.BudgetSet{}, err
	}
	if err := checked(result.envelope); err != nil {
		return mbank.BudgetSet{}, err
	}
	return mbank.BudgetSet{Categories: result.Categories, Budgets: result.Budgets}, nil
}

// SetBudget upserts a single category budget. Batch semantics (one request
// per category, non-atomic) belong to the coordinator, not to the wire.
func (c *Client) SetBudget(ctx context.Context, month date.Month, currency, category string, amount decimal.Decimal) error {
	payload := struct {
		Month    string          `json:"month"`
		Currency string          `json:"currency"`
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	}{month.String(), currency, category, amount}
	var env envelope
	if err := c.post(ctx, "/api/budget", payload, &env); err != nil {
		return err
	}
	return checked(env)
}

// SpendingVsBudget returns the per-category budgeted-vs-spent comparison.
func (c *Client) SpendingVsBudget(ctx context.Context, month date.Month, currency string) ([]mbank.BudgetComparison, error) {
	query := url.Values{}
	query.Set("month", month.String())
	query.Set("currency", currency)
	var result struct {
		envelope
		Comparison []mbank.BudgetComparison `json:"comparison"`
	}
	if err := c.get(ctx, "/api/spending-vs-budget", query, &result); err != nil {
		return nil, err
	}
	if err := checked(result.envelope); err != nil {
		return nil, err
	}
	return result.Comparison, nil
}
