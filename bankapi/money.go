package bankapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

// cashPayload is the common wire shape of deposit and withdraw requests.
// The date is omitted when zero: the server then books the operation today.
type cashPayload struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Date     string          `json:"date,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// moveResult is the wire shape of money-moving responses.
type moveResult struct {
	envelope
	Currency string `json:"currency"`
	Message  string `json:"message"`
}

func wireDate(on date.Date) string {
	if on.IsZero() {
		return ""
	}
	return on.String()
}

func (c *Client) Deposit(ctx context.Context, amount decimal.Decimal, currency string, on date.Date) (string, error) {
	var result moveResult
	payload := cashPayload{Amount: amount, Currency: currency, Date: wireDate(on)}
	if err := c.post(ctx, "/api/deposit", payload, &result); err != nil {
		return "", err
	}
	return result.Currency, checked(result.envelope)
}

func (c *Client) Withdraw(ctx context.Context, amount decimal.Decimal, currency string, on date.Date, note string) (string, error) {
	var result moveResult
	payload := cashPayload{Amount: amount, Currency: currency, Date: wireDate(on), Note: note}
	if err := c.post(ctx, "/api/withdraw", payload, &result); err != nil {
		return "", err
	}
	return result.Currency, checked(result.envelope)
}

func (c *Client) Transfer(ctx context.Context, to string, amount decimal.Decimal, currency string, on date.Date, note string) (string, error) {
	payload := struct {
		ToName   string          `json:"to_name"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Date     string          `json:"date,omitempty"`
		Note     string          `json:"note,omitempty"`
	}{to, amount, currency, wireDate(on), note}
	var result moveResult
	if err := c.post(ctx, "/api/transfer", payload, &result); err != nil {
		return "", err
	}
	return result.Currency, checked(result.envelope)
}

// Exchange converts between currencies; the server's human-readable message
// (amounts and applied rate) is returned on success.
func (c *Client) Exchange(ctx context.Context, from, to string, amount decimal.Decimal, on date.Date) (string, error) {
	payload := struct {
		From   string          `json:"from_currency"`
		To     string          `json:"to_currency"`
		Amount decimal.Decimal `json:"from_amount"`
		Date   string          `json:"date,omitempty"`
	}{from, to, amount, wireDate(on)}
	var result moveResult
	if err := c.post(ctx, "/api/exchange-currency", payload, &result); err != nil {
		return "", err
	}
	return result.Message, checked(result.envelope)
}

// Quote asks for a read-only conversion estimate. Safe to call repeatedly,
// it has no side effects.
func (c *Client) Quote(ctx context.Context, from, to string, amount decimal.Decimal) (mbank.Quote, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	query.Set("amount", amount.String())
	var result struct {
		envelope
		ToAmount decimal.Decimal `json:"to_amount"`
		Rate     float64         `json:"rate"`
	}
	if err := c.get(ctx, "/api/quote", query, &result); err != nil {
		return mbank.Quote{}, err
	}
	if err := checked(result.envelope); err != nil {
		return mbank.Quote{}, err
	}
	return mbank.Quote{
		From:       from,
		To:         to,
		FromAmount: amount,
		ToAmount:   result.ToAmount,
		Rate:       result.Rate,
	}, nil
}

// Transactions returns the ordered ledger history, optionally month-filtered.
func (c *Client) Transactions(ctx context.Context, month date.Month) ([]mbank.TransactionRecord, error) {
	var query url.Values
	if !month.IsZero() {
		query = url.Values{"month": {month.String()}}
	}
	var records []mbank.TransactionRecord
	if err := c.get(ctx, "/api/my-transactions", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ExchangeRates returns the public rate board against the reference currency.
func (c *Client) ExchangeRates(ctx context.Context) ([]mbank.Rate, error) {
	var result struct {
		envelope
		Base  string       `json:"base"`
		Rates []mbank.Rate `json:"rates"`
	}
	if err := c.get(ctx, "/api/exchange-rates", nil, &result); err != nil {
		return nil, err
	}
	if err := checked(result.envelope); err != nil {
		return nil, err
	}
	return result.Rates, nil
}

// ExportTransactions streams the server-rendered export (format owned by the
// server) into w.
func (c *Client) ExportTransactions(ctx context.Context, w io.Writer) error {
	addr := c.base.JoinPath("/api/export-transactions")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		// A failed export answers with the usual JSON error envelope.
		var buf bytes.Buffer
		io.Copy(&buf, resp.Body)
		var env envelope
		if json.Unmarshal(buf.Bytes(), &env) == nil && env.Error != "" {
			return &ServerError{Message: env.Error}
		}
		return fmt.Errorf("cannot export transactions: %s", resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}
