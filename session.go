package mbank

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ReferenceCurrency is the currency the server values total assets in.
const ReferenceCurrency = "TWD"

// AllCurrencies is the fixed superset of currencies the service accepts.
// Forms that may open a new wallet (deposit, exchange target) offer this
// list; forms that spend from a wallet offer the held subset instead.
var AllCurrencies = []string{"TWD", "USD", "JPY", "EUR", "CNY", "HKD", "GBP", "AUD", "CAD", "KRW", "SGD"}

// ErrSessionExpired reports that the server no longer recognizes the session.
// It is terminal for the current run: the caller must log in again, there is
// nothing to retry.
var ErrSessionExpired = errors.New("session expired, please log in again")

// SessionStore holds the current Session and its derived currency lists.
// The session value is replaced wholesale on every refresh so readers never
// observe a half-updated session.
type SessionStore struct {
	svc Service

	session      Session
	myCurrencies []string
}

func NewSessionStore(svc Service) *SessionStore {
	return &SessionStore{svc: svc}
}

// Refresh re-pulls the session from the server and atomically replaces the
// held snapshot. A "not logged in" answer is returned as ErrSessionExpired.
func (s *SessionStore) Refresh(ctx context.Context) error {
	session, err := s.svc.Session(ctx)
	if err != nil {
		return fmt.Errorf("cannot refresh session: %w", err)
	}
	if !session.LoggedIn {
		return ErrSessionExpired
	}
	s.session = session
	s.myCurrencies = heldCurrencies(session)
	return nil
}

// Session returns the last refreshed session snapshot.
func (s *SessionStore) Session() Session { return s.session }

// MyCurrencies returns the currency codes the user currently holds, in wallet
// order. It is recomputed on every refresh: the held set can grow, for
// instance after an exchange opens a new wallet.
func (s *SessionStore) MyCurrencies() []string { return s.myCurrencies }

// Holds reports whether the user currently has a wallet in that currency.
func (s *SessionStore) Holds(currency string) bool {
	return slices.Contains(s.myCurrencies, currency)
}

// heldCurrencies derives the held-currency list from a session. Pure function
// of the session value, computed once per refresh.
func heldCurrencies(session Session) []string {
	currencies := make([]string, 0, len(session.Wallets))
	for _, w := range session.Wallets {
		if !slices.Contains(currencies, w.Currency) {
			currencies = append(currencies, w.Currency)
		}
	}
	return currencies
}
