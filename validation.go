package mbank

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ValidationError is a client-checkable failure: the request is rejected
// before anything is sent to the server.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a client-side validation failure, as
// opposed to a server-reported or transport failure.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

const (
	errAmountNotPositive = ValidationError("amount must be a number greater than zero")
	errMissingCurrency   = ValidationError("currency is required")
	errMissingRecipient  = ValidationError("recipient account name is required")
	errSameCurrency      = ValidationError("from and to currencies are identical, nothing to exchange")
	errCurrencyNotHeld   = ValidationError("no wallet in that currency")
	errMissingNote       = ValidationError("note is required")
	errZeroAdjustment    = ValidationError("adjustment amount cannot be zero")
	errMissingPassword   = ValidationError("both old and new passwords are required")
)

func validatePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errAmountNotPositive
	}
	return nil
}

func validateCurrency(currency string) error {
	if currency == "" {
		return errMissingCurrency
	}
	return nil
}
