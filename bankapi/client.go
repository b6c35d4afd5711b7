// Package bankapi implements the JSON-over-HTTP client for the remote ledger
// and session service. It is the production implementation of the
// mbank.Service and mbank.AdminService contracts.
package bankapi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/mbank"
)

const sessionFile = "mbank-session"

// ServerError is a failure reported by the server's error field: insufficient
// funds, duplicate name, invalid role and the like. The message is meant for
// the user as-is.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// Client talks to one ledger service. The session cookie is persisted to a
// temp file so consecutive command invocations share the login.
type Client struct {
	base *url.URL
	http *http.Client
}

var _ mbank.Service = (*Client)(nil)
var _ mbank.AdminService = (*Client)(nil)

// New returns a client for the service at server (e.g. "http://localhost:5000").
// A previously persisted session cookie is reloaded if present.
func New(server string) (*Client, error) {
	base, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", server, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{base: base, http: &http.Client{Jar: jar}}
	c.loadSession()
	return c, nil
}

// envelope is the common part of every JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// get performs a GET on an api path and unmarshals the JSON response into data.
func (c *Client) get(ctx context.Context, path string, query url.Values, data any) error {
	addr := c.base.JoinPath(path)
	if query != nil {
		addr.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	return c.do(req, data)
}

// post marshals payload as JSON, POSTs it, and unmarshals the response into data.
func (c *Client) post(ctx context.Context, path string, payload, data any) error {
	return c.send(ctx, http.MethodPost, path, payload, data)
}

// put is post with the PUT verb, for replace-style updates.
func (c *Client) put(ctx context.Context, path string, payload, data any) error {
	return c.send(ctx, http.MethodPut, path, payload, data)
}

func (c *Client) send(ctx context.Context, method, path string, payload, data any) error {
	addr := c.base.JoinPath(path)
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("cannot encode request payload: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, addr.String(), body)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, data)
}

// do executes the request and decodes the response. Non-2xx statuses and
// success=false envelopes both surface the server's error field as a
// ServerError.
func (c *Client) do(req *http.Request, data any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	// reading in a buffer to be able to report the raw payload on decode errors
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		var env envelope
		if json.Unmarshal(buf.Bytes(), &env) == nil && env.Error != "" {
			return &ServerError{Message: env.Error}
		}
		return fmt.Errorf("cannot %s %s/%s: %s", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("could not decode response of %s: %w", req.URL.Path, err)
	}
	return nil
}

// checked is a helper for responses that carry only the success envelope.
func checked(env envelope) error {
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request rejected"
		}
		return &ServerError{Message: msg}
	}
	return nil
}

// sessionPath is where the session cookie survives between invocations.
func sessionPath() string { return filepath.Join(os.TempDir(), sessionFile) }

// saveSession persists the current cookies for the base URL, one per line.
func (c *Client) saveSession() {
	cookies := c.http.Jar.Cookies(c.base)
	if len(cookies) == 0 {
		return
	}
	var b strings.Builder
	for _, cookie := range cookies {
		fmt.Fprintf(&b, "%s=%s\n", cookie.Name, cookie.Value)
	}
	// best effort: a lost session only means logging in again
	os.WriteFile(sessionPath(), []byte(b.String()), 0600)
}

// loadSession restores persisted cookies into the jar.
func (c *Client) loadSession() {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return
	}
	var cookies []*http.Cookie
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		name, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	c.http.Jar.SetCookies(c.base, cookies)
}

// dropSession forgets the persisted session cookie.
func (c *Client) dropSession() {
	os.Remove(sessionPath())
}
