package mbank

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

func TestFrequenciesHalvesAreIndependent(t *testing.T) {
	svc := newFakeService() // spending has data, income is empty
	a := NewAnalyticsCoordinator(svc)

	report, err := a.Frequencies(context.Background(), Scope{Currency: "TWD"})
	if err != nil {
		t.Fatalf("Frequencies() = %v, want nil", err)
	}
	if report.Spending.Empty() {
		t.Errorf("Spending.Empty() = true, want data")
	}
	if !report.Income.Empty() {
		t.Errorf("Income.Empty() = false, want empty")
	}
}

func TestAnalyticsRequireCurrency(t *testing.T) {
	svc := newFakeService()
	a := NewAnalyticsCoordinator(svc)
	ctx := context.Background()

	if _, err := a.CashFlow(ctx, Scope{}); !IsValidation(err) {
		t.Errorf("CashFlow() = %v, want a validation error", err)
	}
	if _, err := a.Frequencies(ctx, Scope{}); !IsValidation(err) {
		t.Errorf("Frequencies() = %v, want a validation error", err)
	}
	if _, err := a.Budget(ctx, Scope{}); !IsValidation(err) {
		t.Errorf("Budget() = %v, want a validation error", err)
	}
	if n := len(svc.calls); n != 0 {
		t.Errorf("unscoped analytics reached the server: %v", svc.calls)
	}
}

func TestBudgetDefaultsToCurrentMonth(t *testing.T) {
	svc := newFakeService()
	a := NewAnalyticsCoordinator(svc)

	view, err := a.Budget(context.Background(), Scope{Currency: "TWD"})
	if err != nil {
		t.Fatalf("Budget() = %v, want nil", err)
	}
	if view.Scope.Month != date.ThisMonth() {
		t.Errorf("Budget() month = %v, want current month", view.Scope.Month)
	}
	if a.LastBudgetScope().Month.IsZero() {
		t.Errorf("LastBudgetScope() month is zero, want current month")
	}
}

func TestSaveBudgetsPartialFailure(t *testing.T) {
	svc := newFakeService()
	svc.rejectCategories = map[string]bool{"Transport": true}
	a := NewAnalyticsCoordinator(svc)

	amounts := map[string]decimal.Decimal{
		"Food":      decimal.NewFromInt(1000),
		"Transport": decimal.NewFromInt(500),
		"Leisure":   decimal.NewFromInt(200),
	}
	err := a.SaveBudgets(context.Background(), Scope{Currency: "TWD"}, amounts)
	if err == nil {
		t.Fatalf("SaveBudgets() = nil, want an aggregate error")
	}
	if !strings.Contains(err.Error(), "Transport") {
		t.Errorf("SaveBudgets() = %v, want to name the failing category", err)
	}
	// Not atomic: every upsert is attempted even after one fails.
	if n := svc.calls["SetBudget"]; n != 3 {
		t.Errorf("SetBudget attempted %d times, want 3", n)
	}
}

func TestSaveBudgetsRejectsNegativeLocally(t *testing.T) {
	svc := newFakeService()
	a := NewAnalyticsCoordinator(svc)

	amounts := map[string]decimal.Decimal{"Food": decimal.NewFromInt(-1)}
	err := a.SaveBudgets(context.Background(), Scope{Currency: "TWD"}, amounts)
	if !IsValidation(err) {
		t.Fatalf("SaveBudgets() = %v, want a validation error", err)
	}
	if n := svc.calls["SetBudget"]; n != 0 {
		t.Errorf("negative budget reached the server %d times, want 0", n)
	}
}

func TestBudgetComparisonProgress(t *testing.T) {
	tests := []struct {
		name         string
		budget       int64
		spent        int64
		wantProgress int
		wantOver     bool
	}{
		{"under budget", 1000, 250, 25, false},
		{"exactly at budget", 1000, 1000, 100, false},
		{"over budget capped", 1000, 2500, 100, true},
		{"no budget no spend", 0, 0, 0, false},
		{"no budget with spend", 0, 100, 100, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := BudgetComparison{
				Budget: decimal.NewFromInt(tc.budget),
				Spent:  decimal.NewFromInt(tc.spent),
			}
			if got := c.Progress(); got != tc.wantProgress {
				t.Errorf("Progress() = %d, want %d", got, tc.wantProgress)
			}
			if got := c.Over(); got != tc.wantOver {
				t.Errorf("Over() = %v, want %v", got, tc.wantOver)
			}
		})
	}
}
