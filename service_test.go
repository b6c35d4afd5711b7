package mbank

import (
	"context"
	"fmt"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

// fakeService is an in-memory Service that counts every call, so tests can
// assert which requests a controller did (or did not) send.
type fakeService struct {
	calls map[string]int

	session Session
	quote   Quote

	// per-method injected failures, keyed by method name
	fail map[string]error

	// categories whose SetBudget fails, for partial-save tests
	rejectCategories map[string]bool
}

func newFakeService() *fakeService {
	return &fakeService{
		calls: make(map[string]int),
		fail:  make(map[string]error),
		session: Session{
			LoggedIn:   true,
			Name:       "alice",
			Role:       "customer",
			TotalValue: decimal.NewFromInt(1000),
			Wallets: []Wallet{
				{Currency: "TWD", Balance: decimal.NewFromInt(1000)},
				{Currency: "USD", Balance: decimal.NewFromInt(20)},
			},
		},
	}
}

func (f *fakeService) count(method string) error {
	f.calls[method]++
	return f.fail[method]
}

func (f *fakeService) Session(ctx context.Context) (Session, error) {
	return f.session, f.count("Session")
}

func (f *fakeService) Login(ctx context.Context, name, password string) error {
	return f.count("Login")
}

func (f *fakeService) Register(ctx context.Context, name, password string, amount decimal.Decimal) error {
	return f.count("Register")
}

func (f *fakeService) Logout(ctx context.Context) error { return f.count("Logout") }

func (f *fakeService) Deposit(ctx context.Context, amount decimal.Decimal, currency string, on date.Date) (string, error) {
	return currency, f.count("Deposit")
}

func (f *fakeService) Withdraw(ctx context.Context, amount decimal.Decimal, currency string, on date.Date, note string) (string, error) {
	return currency, f.count("Withdraw")
}

func (f *fakeService) Transfer(ctx context.Context, to string, amount decimal.Decimal, currency string, on date.Date, note string) (string, error) {
	return currency, f.count("Transfer")
}

func (f *fakeService) Exchange(ctx context.Context, from, to string, amount decimal.Decimal, on date.Date) (string, error) {
	return "", f.count("Exchange")
}

func (f *fakeService) Quote(ctx context.Context, from, to string, amount decimal.Decimal) (Quote, error) {
	f.quote.From, f.quote.To, f.quote.FromAmount = from, to, amount
	return f.quote, f.count("Quote")
}

func (f *fakeService) Transactions(ctx context.Context, month date.Month) ([]TransactionRecord, error) {
	return nil, f.count("Transactions")
}

func (f *fakeService) ExchangeRates(ctx context.Context) ([]Rate, error) {
	return nil, f.count("ExchangeRates")
}

func (f *fakeService) CashFlow(ctx context.Context, currency string, month date.Month) (CashFlowReport, error) {
	return CashFlowReport{}, f.count("CashFlow")
}

func (f *fakeService) AnalyzeSpending(ctx context.Context, currency string, month date.Month) (Breakdown, error) {
	return Breakdown{Summary: map[string]int{"Food": 3}}, f.count("AnalyzeSpending")
}

func (f *fakeService) AnalyzeIncome(ctx context.Context, currency string, month date.Month) (Breakdown, error) {
	return Breakdown{}, f.count("AnalyzeIncome")
}

func (f *fakeService) Budgets(ctx context.Context, month date.Month, currency string) (BudgetSet, error) {
	return BudgetSet{Categories: []string{"Food", "Transport"}}, f.count("Budgets")
}

func (f *fakeService) SetBudget(ctx context.Context, month date.Month, currency, category string, amount decimal.Decimal) error {
	if err := f.count("SetBudget"); err != nil {
		return err
	}
	if f.rejectCategories[category] {
		return fmt.Errorf("category %q rejected", category)
	}
	return nil
}

func (f *fakeService) SpendingVsBudget(ctx context.Context, month date.Month, currency string) ([]BudgetComparison, error) {
	return nil, f.count("SpendingVsBudget")
}

func (f *fakeService) UpdateProfile(ctx context.Context, email string) error {
	return f.count("UpdateProfile")
}

func (f *fakeService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return f.count("ChangePassword")
}

var _ Service = (*fakeService)(nil)
