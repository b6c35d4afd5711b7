package mbank

import (
	"context"
	"fmt"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

// ActionDispatcher validates and submits financial intents. Every operation
// has the same shape: validate locally, submit, and on success run the
// ViewSync reconciliation so no view is left showing stale balances. On
// failure the error is reported unchanged and no state is touched.
type ActionDispatcher struct {
	svc   Service
	store *SessionStore
	sync  *ViewSync
}

func NewActionDispatcher(svc Service, store *SessionStore, sync *ViewSync) *ActionDispatcher {
	return &ActionDispatcher{svc: svc, store: store, sync: sync}
}

// Deposit adds funds to a wallet. The currency does not need to be already
// held: depositing in a new currency opens the wallet implicitly.
func (d *ActionDispatcher) Deposit(ctx context.Context, amount decimal.Decimal, currency string, on date.Date) (string, error) {
	if err := validatePositive(amount); err != nil {
		return "", err
	}
	if err := validateCurrency(currency); err != nil {
		return "", err
	}
	cur, err := d.svc.Deposit(ctx, amount, currency, on)
	if err != nil {
		return "", err
	}
	if err := d.sync.AfterMutation(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("deposited %s", M(amount, cur)), nil
}

// Withdraw removes funds from a held wallet. An insufficient balance is the
// server's call, not pre-checked here.
func (d *ActionDispatcher) Withdraw(ctx context.Context, amount decimal.Decimal, currency string, on date.Date, note string) (string, error) {
	if err := validatePositive(amount); err != nil {
		return "", err
	}
	if err := validateCurrency(currency); err != nil {
		return "", err
	}
	if !d.store.Holds(currency) {
		return "", errCurrencyNotHeld
	}
	cur, err := d.svc.Withdraw(ctx, amount, currency, on, note)
	if err != nil {
		return "", err
	}
	if err := d.sync.AfterMutation(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("withdrew %s", M(amount, cur)), nil
}

// Transfer moves funds to another account by name.
func (d *ActionDispatcher) Transfer(ctx context.Context, to string, amount decimal.Decimal, currency string, on date.Date, note string) (string, error) {
	if to == "" {
		return "", errMissingRecipient
	}
	if err := validatePositive(amount); err != nil {
		return "", err
	}
	if err := validateCurrency(currency); err != nil {
		return "", err
	}
	cur, err := d.svc.Transfer(ctx, to, amount, currency, on, note)
	if err != nil {
		return "", err
	}
	if err := d.sync.AfterMutation(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("transferred %s to %s", M(amount, cur), to), nil
}

// Exchange converts between two held currencies. Identical from/to is a
// client-checkable precondition, rejected before any request is sent.
func (d *ActionDispatcher) Exchange(ctx context.Context, from, to string, amount decimal.Decimal, on date.Date) (string, error) {
	if err := validateCurrency(from); err != nil {
		return "", err
	}
	if err := validateCurrency(to); err != nil {
		return "", err
	}
	if from == to {
		return "", errSameCurrency
	}
	if err := validatePositive(amount); err != nil {
		return "", err
	}
	message, err := d.svc.Exchange(ctx, from, to, amount, on)
	if err != nil {
		return "", err
	}
	if err := d.sync.AfterMutation(ctx); err != nil {
		return "", err
	}
	if message == "" {
		message = fmt.Sprintf("exchanged %s to %s", M(amount, from), to)
	}
	return message, nil
}

// UpdateProfile replaces the account email.
func (d *ActionDispatcher) UpdateProfile(ctx context.Context, email string) error {
	if err := d.svc.UpdateProfile(ctx, email); err != nil {
		return err
	}
	return d.sync.AfterMutation(ctx)
}

// ChangePassword rotates the account password. Both passwords are required.
func (d *ActionDispatcher) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return errMissingPassword
	}
	return d.svc.ChangePassword(ctx, oldPassword, newPassword)
}
