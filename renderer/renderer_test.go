package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

func TestCashFlowOmitsMissingCumulative(t *testing.T) {
	report := mbank.CashFlowReport{
		Summary: mbank.CashFlowSummary{
			TotalIncome: 1000,
			TotalSpend:  400,
			DailyFlow: map[string]mbank.FlowPoint{
				"2025-07-01": {Income: 1000, Spend: 400},
			},
			IncomeSources: map[string]float64{"Salary": 1000},
			SpendSources:  map[string]float64{"Food": 400},
		},
	}

	md := CashFlowMarkdown("TWD", report)
	if strings.Contains(md, "Cumulative") {
		t.Errorf("report shows a cumulative section without data:\n%s", md)
	}
	if !strings.Contains(md, "Daily Flow") {
		t.Errorf("report misses the daily flow section:\n%s", md)
	}
	if !strings.Contains(md, "Salary") {
		t.Errorf("report misses the income sources:\n%s", md)
	}
	if strings.Contains(md, "error") {
		t.Errorf("report contains a template error:\n%s", md)
	}
}

func TestCashFlowEmptyScopeShowsNoData(t *testing.T) {
	md := CashFlowMarkdown("SGD", mbank.CashFlowReport{})
	if !strings.Contains(md, "_no data for SGD_") {
		t.Errorf("empty scope misses the no-data status:\n%s", md)
	}
	if strings.Contains(md, "Income") || strings.Contains(md, "Daily Flow") {
		t.Errorf("empty scope renders a zeroed report:\n%s", md)
	}

	// The suggestion still goes through even without figures.
	md = CashFlowMarkdown("SGD", mbank.CashFlowReport{Suggestion: "start tracking your spending"})
	if !strings.Contains(md, "> start tracking your spending") {
		t.Errorf("empty scope misses the suggestion quote:\n%s", md)
	}
}

func TestCashFlowWithCumulative(t *testing.T) {
	report := mbank.CashFlowReport{
		Summary: mbank.CashFlowSummary{
			DailyFlow: map[string]mbank.FlowPoint{
				"2025-07-02": {Income: 0, Spend: 100},
				"2025-07-01": {Income: 500, Spend: 0},
			},
			CumulativeFlow: map[string]mbank.FlowPoint{
				"2025-07-01": {Income: 500, Spend: 0},
				"2025-07-02": {Income: 500, Spend: 100},
			},
		},
		Suggestion: "watch your food spending",
	}

	md := CashFlowMarkdown("TWD 2025-07", report)
	if !strings.Contains(md, "Cumulative") {
		t.Errorf("report misses the cumulative section:\n%s", md)
	}
	if !strings.Contains(md, "> watch your food spending") {
		t.Errorf("report misses the suggestion quote:\n%s", md)
	}
	// days sorted ascending
	first := strings.Index(md, "2025-07-01")
	second := strings.Index(md, "2025-07-02")
	if first < 0 || second < 0 || second < first {
		t.Errorf("days are not in ascending order:\n%s", md)
	}
}

func TestBudgetMarkdown(t *testing.T) {
	view := mbank.BudgetView{
		Scope: mbank.Scope{Currency: "TWD", Month: date.NewMonth(2025, 7)},
		Set: mbank.BudgetSet{
			Categories: []string{"Food", "Transport"},
			Budgets: map[string]decimal.Decimal{
				"Food": decimal.NewFromInt(1000),
			},
		},
		Comparison: []mbank.BudgetComparison{
			{Category: "Food", Budget: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(2500)},
			{Category: "Transport", Budget: decimal.Zero, Spent: decimal.Zero},
		},
	}

	md := BudgetMarkdown(view)
	if !strings.Contains(md, "**over budget**") {
		t.Errorf("over-spent category is not marked:\n%s", md)
	}
	if !strings.Contains(md, "100%") {
		t.Errorf("over-spent progress is not capped at 100%%:\n%s", md)
	}
	// zero budget, zero spend: no comparison row
	if strings.Contains(md, "Transport: 0") {
		t.Errorf("inactive category got a comparison row:\n%s", md)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent int
		filled  int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{250, 20}, // clamped
		{-5, 0},   // clamped
	}
	for _, tc := range tests {
		bar := Bar(tc.percent)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Errorf("Bar(%d) filled = %d, want %d", tc.percent, got, tc.filled)
		}
		if got := len([]rune(bar)); got != 20 {
			t.Errorf("Bar(%d) width = %d, want 20", tc.percent, got)
		}
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	records := []mbank.TransactionRecord{
		{
			Date:         date.New(2025, 7, 15),
			Type:         "Withdraw",
			Currency:     "TWD",
			Amount:       decimal.NewFromInt(-120),
			BalanceAfter: decimal.NewFromInt(880),
			Note:         "Food",
		},
	}
	md := TransactionsMarkdown(records)
	if !strings.Contains(md, "2025-07-15") || !strings.Contains(md, "Food") {
		t.Errorf("transactions table misses data:\n%s", md)
	}

	if md := TransactionsMarkdown(nil); !strings.Contains(md, "_no transactions_") {
		t.Errorf("empty history misses its placeholder:\n%s", md)
	}
}

func TestSessionMarkdown(t *testing.T) {
	s := mbank.Session{
		LoggedIn:   true,
		Name:       "alice",
		TotalValue: decimal.NewFromInt(1234),
		Wallets: []mbank.Wallet{
			{Currency: "TWD", Balance: decimal.NewFromInt(1000)},
		},
	}
	md := SessionMarkdown(s)
	if !strings.Contains(md, "alice") {
		t.Errorf("summary misses the user name:\n%s", md)
	}
	if !strings.Contains(md, "TWD") {
		t.Errorf("summary misses the wallet currency:\n%s", md)
	}
}
