package renderer

import (
	"github.com/etnz/mbank"
)

// BudgetRow is one category of the budget-vs-spent comparison. The bar width
// is capped at 100% display width even when spent exceeds the budget.
type BudgetRow struct {
	Category string
	Budget   string
	Spent    string
	Bar      string
	Percent  int
	Over     bool
}

// Budget is the render model for the budget view.
type Budget struct {
	Scope      string
	Currency   string
	Categories []string
	Budgets    map[string]string
	Rows       []BudgetRow
}

// NewBudget assembles the render model from a budget view.
func NewBudget(view mbank.BudgetView) *Budget {
	b := &Budget{
		Scope:      view.Scope.String(),
		Currency:   view.Scope.Currency,
		Categories: view.Set.Categories,
		Budgets:    map[string]string{},
	}
	for category, amount := range view.Set.Budgets {
		b.Budgets[category] = amount.StringFixed(0)
	}
	for _, c := range view.Comparison {
		if !c.Budget.IsPositive() && !c.Spent.IsPositive() {
			continue // nothing budgeted, nothing spent: not worth a row
		}
		percent := c.Progress()
		b.Rows = append(b.Rows, BudgetRow{
			Category: c.Category,
			Budget:   c.Budget.StringFixed(0),
			Spent:    c.Spent.StringFixed(0),
			Bar:      Bar(percent),
			Percent:  percent,
			Over:     c.Over(),
		})
	}
	return b
}

// BudgetMarkdown renders the budget settings and the budget-vs-spent
// comparison for a (month, currency) scope.
func BudgetMarkdown(view mbank.BudgetView) string {
	return renderTemplate("budget", "budget.md", nil, NewBudget(view))
}
