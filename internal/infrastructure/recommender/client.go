package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the internal scoring service that ranks product
// recommendation candidates.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a scoring service client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type scoreRequest struct {
	CandidateIDs []uuid.UUID `json:"candidateIds"`
	ExcludeIDs   []uuid.UUID `json:"excludeIds"`
	Limit        int         `json:"limit"`
}

type scoreResponse struct {
	ProductIDs []uuid.UUID `json:"productIds"`
}

// Score returns product IDs ranked by relevance, best first.
func (c *Client) Score(ctx context.Context, candidateIDs, excludeIDs []uuid.UUID, limit int) ([]uuid.UUID, error) {
	body, err := json.Marshal(scoreRequest{
		CandidateIDs: candidateIDs,
		ExcludeIDs:   excludeIDs,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.ProductIDs, nil
}
