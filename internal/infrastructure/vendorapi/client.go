package vendorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/pkg/metrics"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// Client talks to the vendor merchant-account API. Calls are blocking,
// single-shot requests; retries happen at the caller's transport layer.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a vendor API client
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateAccount creates a vendor merchant account
func (c *Client) CreateAccount(ctx context.Context, params *AccountParams) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodPost, "/accounts", params.Encode(), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount updates a vendor merchant account
func (c *Client) UpdateAccount(ctx context.Context, accountID string, params *AccountParams) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodPost, "/accounts/"+accountID, params.Encode(), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccount retrieves a vendor merchant account
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodGet, "/accounts/"+accountID, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateBankAccount attaches or replaces the account's payout destination
func (c *Client) UpdateBankAccount(ctx context.Context, accountID string, params *BankAccountParams) (*BankAccount, error) {
	var account struct {
		ExternalAccounts struct {
			Data []*BankAccount `json:"data"`
		} `json:"external_accounts"`
	}
	if err := c.do(ctx, http.MethodPost, "/accounts/"+accountID, params.Encode(), &account); err != nil {
		return nil, err
	}
	if len(account.ExternalAccounts.Data) == 0 {
		return nil, fmt.Errorf("%w: no external account returned", domainerrors.ErrVendorRejected)
	}
	return account.ExternalAccounts.Data[0], nil
}

// ListPersons lists persons attached to a company account
func (c *Client) ListPersons(ctx context.Context, accountID string) ([]*Person, error) {
	var list struct {
		Data []*Person `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/accounts/"+accountID+"/persons", nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.VendorAPICall(path, "transport_error")
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		metrics.VendorAPICall(path, "error")
		apiErr := decodeAPIError(data)
		return fmt.Errorf("%w: %s", domainerrors.ErrVendorRejected, apiErr.Error())
	}
	metrics.VendorAPICall(path, "ok")

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
