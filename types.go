package mbank

import (
	"context"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

// Wallet is a single-currency balance owned by one user.
// Uniqueness of currency per wallet is enforced by the server.
type Wallet struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// Money returns the wallet balance as a formattable Money value.
func (w Wallet) Money() Money { return M(w.Balance, w.Currency) }

// Session is the authenticated identity and its wallet snapshot.
// It is owned by the SessionStore and replaced wholesale on every refresh.
type Session struct {
	LoggedIn   bool            `json:"is_logged_in"`
	Name       string          `json:"user_name"`
	Role       string          `json:"user_role"`
	Email      string          `json:"email"`
	TotalValue decimal.Decimal `json:"total_twd_value"` // valuation in the reference currency
	Wallets    []Wallet        `json:"wallets"`
	Admin      bool            `json:"is_admin"`
}

// TransactionRecord is one line of the server-owned ledger history.
// Read-only from the client's perspective.
type TransactionRecord struct {
	Date         date.Date       `json:"date"`
	Type         string          `json:"type"`
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"` // signed
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Note         string          `json:"note"`
	Rate         float64         `json:"exchange_rate"` // 0 when no exchange was involved
}

// Quote is a non-persisted, point-in-time conversion estimate.
type Quote struct {
	From       string
	To         string
	FromAmount decimal.Decimal
	ToAmount   decimal.Decimal
	Rate       float64 // 0 when the server applied no explicit rate (identity conversions)
}

// FlowPoint is one day of income and spend, in chart-ready numbers.
type FlowPoint struct {
	Income float64 `json:"income"`
	Spend  float64 `json:"spend"`
}

// CashFlowSummary aggregates income/spend series for a (currency, month) scope.
// CumulativeFlow may be absent from older or partial server responses.
type CashFlowSummary struct {
	TotalIncome    float64              `json:"total_income"`
	TotalSpend     float64              `json:"total_spend"`
	DailyFlow      map[string]FlowPoint `json:"daily_flow"`
	CumulativeFlow map[string]FlowPoint `json:"cumulative_flow"`
	IncomeSources  map[string]float64   `json:"income_sources"`
	SpendSources   map[string]float64   `json:"spend_sources"`
}

// Empty reports whether the scope had no data at all.
func (s CashFlowSummary) Empty() bool {
	return s.TotalIncome == 0 && s.TotalSpend == 0 && len(s.DailyFlow) == 0
}

// CashFlowReport is the cash-flow view payload: the summary plus the
// server's optional textual suggestion.
type CashFlowReport struct {
	Summary    CashFlowSummary
	Suggestion string
}

// Breakdown is a category to occurrence-count mapping for the frequency view.
type Breakdown struct {
	Summary    map[string]int
	Message    string
	Suggestion string
}

// Empty reports whether this side of the frequency view has no data.
func (b Breakdown) Empty() bool { return len(b.Summary) == 0 }

// BudgetSet is the editable category to budgeted-amount mapping for a
// (month, currency) scope.
type BudgetSet struct {
	Categories []string
	Budgets    map[string]decimal.Decimal
}

// BudgetComparison is one category of budgeted-vs-spent.
type BudgetComparison struct {
	Category string          `json:"category"`
	Budget   decimal.Decimal `json:"budget"`
	Spent    decimal.Decimal `json:"spent"`
}

// Over reports whether the category is over budget (spent > budgeted).
// This drives a visual distinction only, never a blocking rule.
func (c BudgetComparison) Over() bool { return c.Spent.GreaterThan(c.Budget) }

// Progress returns the spent/budget ratio as a percentage capped at 100
// for display width purposes.
func (c BudgetComparison) Progress() int {
	if !c.Budget.IsPositive() {
		if c.Spent.IsPositive() {
			return 100
		}
		return 0
	}
	p := c.Spent.Div(c.Budget).Mul(decimal.NewFromInt(100)).IntPart()
	if p > 100 {
		return 100
	}
	return int(p)
}

// Rate is one line of the public exchange-rate board.
type Rate struct {
	Name string  `json:"name"`
	Flag string  `json:"flag"`
	Rate float64 `json:"rate"`
}

// User is one row of the administrative roster.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"is_active"`
}

// UserDetail is the eager part of the per-user admin view.
type UserDetail struct {
	User
	Wallets []Wallet `json:"wallets"`
}

// Stats is the system-wide administrative dashboard summary.
type Stats struct {
	TotalUsers       int
	ActiveUsers      int
	TotalAssets      float64 // in the reference currency
	AssetsByCurrency map[string]float64
}

// Service is the ledger service contract the controllers depend on.
// bankapi.Client is the production implementation.
type Service interface {
	Session(ctx context.Context) (Session, error)
	Login(ctx context.Context, name, password string) error
	Register(ctx context.Context, name, password string, amount decimal.Decimal) error
	Logout(ctx context.Context) error

	// Mutations return the currency (or server message for Exchange) echoed by the server.
	Deposit(ctx context.Context, amount decimal.Decimal, currency string, on date.Date) (string, error)
	Withdraw(ctx context.Context, amount decimal.Decimal, currency string, on date.Date, note string) (string, error)
	Transfer(ctx context.Context, to string, amount decimal.Decimal, currency string, on date.Date, note string) (string, error)
	Exchange(ctx context.Context, from, to string, amount decimal.Decimal, on date.Date) (string, error)

	Quote(ctx context.Context, from, to string, amount decimal.Decimal) (Quote, error)
	Transactions(ctx context.Context, month date.Month) ([]TransactionRecord, error)
	ExchangeRates(ctx context.Context) ([]Rate, error)

	CashFlow(ctx context.Context, currency string, month date.Month) (CashFlowReport, error)
	AnalyzeSpending(ctx context.Context, currency string, month date.Month) (Breakdown, error)
	AnalyzeIncome(ctx context.Context, currency string, month date.Month) (Breakdown, error)
	Budgets(ctx context.Context, month date.Month, currency string) (BudgetSet, error)
	SetBudget(ctx context.Context, month date.Month, currency, category string, amount decimal.Decimal) error
	SpendingVsBudget(ctx context.Context, month date.Month, currency string) ([]BudgetComparison, error)

	UpdateProfile(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// AdminService is the administrative contract, granted to admin sessions only.
type AdminService interface {
	Users(ctx context.Context) ([]User, error)
	UserDetail(ctx context.Context, id int) (UserDetail, error)
	UserTransactions(ctx context.Context, id int, month date.Month) ([]TransactionRecord, error)
	UpdateUser(ctx context.Context, id int, email, role string, active bool) error
	ResetPassword(ctx context.Context, id int) (newPassword string, err error)
	ManualAdjustment(ctx context.Context, id int, currency string, amount decimal.Decimal, note string) error
	Stats(ctx context.Context) (Stats, error)
	ManualRates(ctx context.Context) (map[string]float64, error)
	SaveManualRates(ctx context.Context, rates map[string]float64) error
}
