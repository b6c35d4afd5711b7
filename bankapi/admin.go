package bankapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/mbank"
	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

func userPath(id int, parts ...string) string {
	p := "/api/admin/user/" + strconv.Itoa(id)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// Users lists every account. The endpoint returns a bare array.
func (c *Client) Users(ctx context.Context) ([]mbank.User, error) {
	var users []mbank.User
	if err := c.get(ctx, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserDetail loads one user's profile and wallets.
func (c *Client) UserDetail(ctx context.Context, id int) (mbank.UserDetail, error) {
	var result struct {
		envelope
		UserData mbank.UserDetail `json:"user_data"`
	}
	if err := c.get(ctx, userPath(id), nil, &result); err != nil {
		return mbank.UserDetail{}, err
	}
	return result.UserData, checked(result.envelope)
}

// UserTransactions loads one user's ledger history, optionally month-filtered.
func (c *Client) UserTransactions(ctx context.Context, id int, month date.Month) ([]mbank.TransactionRecord, error) {
	var query url.Values
	if !month.IsZero() {
		query = url.Values{"month": {month.String()}}
	}
	var records []mbank.TransactionRecord
	if err := c.get(ctx, userPath(id, "transactions"), query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateUser submits the replace-style profile update.
func (c *Client) UpdateUser(ctx context.Context, id int, email, role string, active bool) error {
	payload := struct {
		Email  string `json:"email"`
		Role   string `json:"role"`
		Active bool   `json:"is_active"`
	}{email, role, active}
	var env envelope
	if err := c.put(ctx, userPath(id, "update"), payload, &env); err != nil {
		return err
	}
	return checked(env)
}

// ResetPassword resets a user's password and returns the generated credential.
func (c *Client) ResetPassword(ctx context.Context, id int) (string, error) {
	var result struct {
		envelope
		NewPassword string `json:"new_password"`
	}
	if err := c.post(ctx, userPath(id, "reset-password"), nil, &result); err != nil {
		return "", err
	}
	return result.NewPassword, checked(result.envelope)
}

// ManualAdjustment posts a signed ledger adjustment to another user's wallet.
func (c *Client) ManualAdjustment(ctx context.Context, id int, currency string, amount decimal.Decimal, note string) error {
	payload := struct {
		UserID   int             `json:"user_id"`
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
		Note     string          `json:"note"`
	}{id, currency, amount, note}
	var env envelope
	if err := c.post(ctx, "/api/admin/manual-adjustment", payload, &env); err != nil {
		return err
	}
	return checked(env)
}

// Stats returns the system-wide dashboard numbers. The stats payload is
// loosely shaped and grows fields over time, so values are plucked by path
// instead of binding the whole object.
func (c *Client) Stats(ctx context.Context) (mbank.Stats, error) {
	var jobj any
	if err := c.get(ctx, "/api/admin/stats", nil, &jobj); err != nil {
		return mbank.Stats{}, err
	}
	stats := mbank.Stats{AssetsByCurrency: map[string]float64{}}
	stats.TotalUsers = int(pluckFloat(jobj, "$.stats.total_users"))
	stats.ActiveUsers = int(pluckFloat(jobj, "$.stats.active_users"))
	stats.TotalAssets = pluckFloat(jobj, "$.stats.total_assets_twd")

	if jval, err := jsonpath.Get("$.stats.assets_by_currency", jobj); err == nil {
		if jmap, ok := jval.(map[string]any); ok {
			for currency, total := range jmap {
				if v, ok := total.(float64); ok {
					stats.AssetsByCurrency[currency] = v
				}
			}
		}
	}
	return stats, nil
}

// pluckFloat extracts a single number by jsonpath, 0 when absent.
func pluckFloat(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or a
	// single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, _ := jval.(float64)
	return v
}

// ManualRates returns the manually-entered exchange-rate table.
func (c *Client) ManualRates(ctx context.Context) (map[string]float64, error) {
	var result struct {
		envelope
		Rates map[string]float64 `json:"rates"`
	}
	if err := c.get(ctx, "/api/admin/manual-rates", nil, &result); err != nil {
		return nil, err
	}
	if err := checked(result.envelope); err != nil {
		return nil, err
	}
	if result.Rates == nil {
		result.Rates = map[string]float64{}
	}
	return result.Rates, nil
}

// SaveManualRates replaces the manual exchange-rate table wholesale.
func (c *Client) SaveManualRates(ctx context.Context, rates map[string]float64) error {
	payload := struct {
		Rates map[string]float64 `json:"rates"`
	}{rates}
	var env envelope
	if err := c.post(ctx, "/api/admin/manual-rates", payload, &env); err != nil {
		return err
	}
	return checked(env)
}

// String implements fmt.Stringer for debug logs.
func (c *Client) String() string { return fmt.Sprintf("bankapi(%s)", c.base) }
