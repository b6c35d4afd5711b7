package mbank

import (
	"context"
	"fmt"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

// AdminRosterController manages other users' accounts: roster listing,
// per-user detail (profile and wallets eager, transactions lazy), replace
// style profile updates, password resets and manual ledger adjustments.
// Available to admin sessions only; the server enforces the role.
type AdminRosterController struct {
	svc AdminService
}

func NewAdminRosterController(svc AdminService) *AdminRosterController {
	return &AdminRosterController{svc: svc}
}

// Users lists all accounts with status and role.
func (c *AdminRosterController) Users(ctx context.Context) ([]User, error) {
	return c.svc.Users(ctx)
}

// Detail loads a user's profile and wallets. Transactions are loaded
// separately with Transactions.
func (c *AdminRosterController) Detail(ctx context.Context, id int) (UserDetail, error) {
	return c.svc.UserDetail(ctx, id)
}

// Transactions loads a user's ledger history, filterable by month.
func (c *AdminRosterController) Transactions(ctx context.Context, id int, month date.Month) ([]TransactionRecord, error) {
	return c.svc.UserTransactions(ctx, id, month)
}

// Update submits a replace-style profile update (email, role, active flag),
// not a field-level patch.
func (c *AdminRosterController) Update(ctx context.Context, id int, email, role string, active bool) error {
	if role != "customer" && role != "admin" {
		return ValidationError(fmt.Sprintf("unknown role %q", role))
	}
	return c.svc.UpdateUser(ctx, id, email, role, active)
}

// ResetPassword resets a user's password. The server-generated credential is
// returned so the operator can surface it; it is never delivered
// automatically.
func (c *AdminRosterController) ResetPassword(ctx context.Context, id int) (string, error) {
	return c.svc.ResetPassword(ctx, id)
}

// Adjust posts a manual ledger adjustment to another user's wallet. The sign
// of the amount decides a deposit-like or withdraw-like effect. Currency and
// note are required and the amount cannot be zero. Interactive confirmation
// is the caller's job: this mutates somebody else's funds.
func (c *AdminRosterController) Adjust(ctx context.Context, id int, currency string, amount decimal.Decimal, note string) error {
	if err := validateCurrency(currency); err != nil {
		return err
	}
	if amount.IsZero() {
		return errZeroAdjustment
	}
	if note == "" {
		return errMissingNote
	}
	return c.svc.ManualAdjustment(ctx, id, currency, amount, note)
}

// Stats returns the system-wide dashboard summary.
func (c *AdminRosterController) Stats(ctx context.Context) (Stats, error) {
	return c.svc.Stats(ctx)
}

// ManualRates returns the manually-entered exchange-rate table ("USD_TWD" keys).
func (c *AdminRosterController) ManualRates(ctx context.Context) (map[string]float64, error) {
	return c.svc.ManualRates(ctx)
}

// SaveManualRates replaces the manual exchange-rate table. Non-positive rates
// are rejected locally.
func (c *AdminRosterController) SaveManualRates(ctx context.Context, rates map[string]float64) error {
	for pair, rate := range rates {
		if rate <= 0 {
			return ValidationError(fmt.Sprintf("rate for %s must be greater than zero", pair))
		}
	}
	return c.svc.SaveManualRates(ctx, rates)
}
