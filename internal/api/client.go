// Package api is a typed client for the remote user-directory service.
// Plain net/http and encoding/json; every operation maps a non-success
// status to one of the typed errors in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"userdir-cli/internal/model"
)

const usersPath = "/api/Users"

// Client talks to a user-directory server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTPClient = h }
}

// New creates a client for the server at baseURL (e.g. "http://localhost:3000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do issues a JSON request and decodes a JSON response into out (when
// non-nil). It returns the response status; transport errors are returned
// with status 0 so callers can distinguish "no response" from a rejection.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("server returned %s", resp.Status)
	}
	if out != nil {
		// Some servers acknowledge writes with an empty body; leave out
		// zero-valued in that case rather than failing the whole call.
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// ListUsers fetches the whole directory. GET /api/Users.
func (c *Client) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	var users []model.UserRecord
	status, err := c.do(ctx, http.MethodGet, usersPath, nil, &users)
	if err != nil {
		return nil, &FetchError{Status: status, Err: err}
	}
	return users, nil
}

// CreateUser persists a new record. POST /api/Users; the server assigns the
// id and echoes the stored record (200 or 201).
func (c *Client) CreateUser(ctx context.Context, draft model.UserRecord) (model.UserRecord, error) {
	draft.ID = ""
	var created model.UserRecord
	status, err := c.do(ctx, http.MethodPost, usersPath, draft, &created)
	if err != nil {
		return model.UserRecord{}, &WriteError{Op: "create", Status: status, Err: err}
	}
	return created, nil
}

// UpdateUser overwrites the record with the given server id.
// PUT /api/Users/{id}.
func (c *Client) UpdateUser(ctx context.Context, id string, draft model.UserRecord) (model.UserRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.UserRecord{}, &MissingIDError{Email: draft.Email}
	}
	var updated model.UserRecord
	status, err := c.do(ctx, http.MethodPut, usersPath+"/"+url.PathEscape(id), draft, &updated)
	if err != nil {
		return model.UserRecord{}, &WriteError{Op: "update", Status: status, Err: err}
	}
	// Some servers reply with an empty body or a bare acknowledgement; fall
	// back to the submitted draft so the caller always has a record to patch
	// the cache with.
	if updated.Identity() == "" {
		updated = draft
		updated.ID = id
	}
	return updated, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and returns the principal's record.
// POST /api/Users/login; anything but 200 is an AuthError.
func (c *Client) Login(ctx context.Context, email, password string) (model.UserRecord, error) {
	var principal model.UserRecord
	status, err := c.do(ctx, http.MethodPost, usersPath+"/login", loginRequest{Email: email, Password: password}, &principal)
	if err != nil {
		return model.UserRecord{}, &AuthError{Status: status, Err: err}
	}
	if status != http.StatusOK {
		return model.UserRecord{}, &AuthError{Status: status, Err: fmt.Errorf("unexpected status %d", status)}
	}
	return principal, nil
}
