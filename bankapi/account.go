package bankapi

import (
	"context"

	"github.com/etnz/mbank"
	"github.com/shopspring/decimal"
)

// Session fetches the current session snapshot. A logged-out session is a
// valid answer (LoggedIn false), not an error.
func (c *Client) Session(ctx context.Context) (mbank.Session, error) {
	var session mbank.Session
	if err := c.get(ctx, "/api/session", nil, &session); err != nil {
		return mbank.Session{}, err
	}
	return session, nil
}

// Login authenticates and persists the session cookie for later invocations.
func (c *Client) Login(ctx context.Context, name, password string) error {
	payload := struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}{name, password}
	var env envelope
	if err := c.post(ctx, "/api/login", payload, &env); err != nil {
		return err
	}
	if err := checked(env); err != nil {
		return err
	}
	c.saveSession()
	return nil
}

// Register creates a new account with an opening deposit in the reference
// currency.
func (c *Client) Register(ctx context.Context, name, password string, amount decimal.Decimal) error {
	payload := struct {
		Name     string          `json:"name"`
		Password string          `json:"password"`
		Amount   decimal.Decimal `json:"amount"`
	}{name, password, amount}
	var env envelope
	if err := c.post(ctx, "/api/register", payload, &env); err != nil {
		return err
	}
	return checked(env)
}

// Logout terminates the server session and forgets the persisted cookie.
func (c *Client) Logout(ctx context.Context) error {
	var env envelope
	if err := c.post(ctx, "/api/logout", nil, &env); err != nil {
		return err
	}
	c.dropSession()
	return nil
}

// UpdateProfile replaces the account email.
func (c *Client) UpdateProfile(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{email}
	var env envelope
	if err := c.post(ctx, "/api/my-profile", payload, &env); err != nil {
		return err
	}
	return checked(env)
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	payload := struct {
		Old string `json:"old_password"`
		New string `json:"new_password"`
	}{oldPassword, newPassword}
	var env envelope
	if err := c.post(ctx, "/api/change-password", payload, &env); err != nil {
		return err
	}
	return checked(env)
}
