// Package remote reads ledger snapshots from the finance backend HTTP API.
//
// Identity is never stored here: every call receives a Session naming the
// backend, the user and the access token to present.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/snapshot"
)

const DefaultTransactionLimit = 50

var ErrInvalidSession = errors.New("invalid remote session")

type Session struct {
	BaseURL     string
	UserID      uuid.UUID
	AccessToken string
}

func (s Session) validate() error {
	if strings.TrimSpace(s.BaseURL) == "" {
		return fmt.Errorf("%w: base url is empty", ErrInvalidSession)
	}
	if s.UserID == uuid.Nil {
		return fmt.Errorf("%w: user id is empty", ErrInvalidSession)
	}
	return nil
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("remote: %d: %s", e.Status, e.Message)
}

type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// NewClientWithHTTP uses hc as is, for callers that own the transport.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) Wallets(ctx context.Context, s Session) ([]snapshot.WalletRecord, error) {
	var out []snapshot.WalletRecord
	if err := c.get(ctx, s, "/wallets", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch wallets: %w", err)
	}
	return nonNil(out), nil
}

func (c *Client) Categories(ctx context.Context, s Session) ([]snapshot.CategoryRecord, error) {
	var out []snapshot.CategoryRecord
	if err := c.get(ctx, s, "/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return nonNil(out), nil
}

// Transactions fetches the most recent transactions. limit <= 0 uses the
// backend default.
func (c *Client) Transactions(ctx context.Context, s Session, limit int) ([]snapshot.TransactionRecord, error) {
	q := url.Values{}
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	q.Set("limit", strconv.Itoa(limit))

	var out []snapshot.TransactionRecord
	if err := c.get(ctx, s, "/transactions", q, &out); err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return nonNil(out), nil
}

func (c *Client) Budgets(ctx context.Context, s Session) ([]snapshot.BudgetRecord, error) {
	var out []snapshot.BudgetRecord
	if err := c.get(ctx, s, "/budgets", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch budgets: %w", err)
	}
	return nonNil(out), nil
}

func (c *Client) Analytics(ctx context.Context, s Session) (snapshot.AnalyticsRecord, error) {
	var out snapshot.AnalyticsRecord
	if err := c.get(ctx, s, "/analytics", nil, &out); err != nil {
		return snapshot.AnalyticsRecord{}, fmt.Errorf("fetch analytics: %w", err)
	}
	out.Breakdown = nonNil(out.Breakdown)
	out.Monthly = nonNil(out.Monthly)
	return out, nil
}

// Fetch pulls every ledger collection into one document. The first failing
// request aborts the fetch.
func (c *Client) Fetch(ctx context.Context, s Session, limit int) (snapshot.Document, error) {
	var (
		doc snapshot.Document
		err error
	)
	if doc.Wallets, err = c.Wallets(ctx, s); err != nil {
		return snapshot.Document{}, err
	}
	if doc.Categories, err = c.Categories(ctx, s); err != nil {
		return snapshot.Document{}, err
	}
	if doc.Transactions, err = c.Transactions(ctx, s, limit); err != nil {
		return snapshot.Document{}, err
	}
	if doc.Budgets, err = c.Budgets(ctx, s); err != nil {
		return snapshot.Document{}, err
	}
	doc.Version = snapshot.DocumentVersion
	doc.ExportedAt = time.Now().UTC()
	return doc, nil
}

func (c *Client) get(ctx context.Context, s Session, path string, q url.Values, out any) error {
	if err := s.validate(); err != nil {
		return err
	}

	u := strings.TrimRight(s.BaseURL, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-User-ID", s.UserID.String())
	if s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var envelope struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
