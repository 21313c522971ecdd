// Package newscatcher provides the driven adapter for the remote Local
// News search API. It issues single HTTP POST requests with a bearer-style
// token header and normalises every failure mode into typed errors that the
// service layer collapses to a uniform "no data" outcome.
package newscatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/localnews-labs/localnews-cli/internal/core/domain"
	"github.com/localnews-labs/localnews-cli/internal/core/ports/driven"
	"github.com/localnews-labs/localnews-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.NewsAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://local-news.newscatcherapi.com"
	DefaultTimeout = 30 * time.Second

	// DefaultRate throttles proactively at 2 req/sec. The API enforces
	// its own quota; this keeps sequential page loops polite.
	DefaultRate = 2.0

	// APITokenHeader carries the static credential.
	APITokenHeader = "x-api-token"

	endpointSearch    = "/api/search"
	endpointHeadlines = "/api/latest_headlines"

	// maxErrorBody bounds how much of an error response body is logged.
	maxErrorBody = 512
)

// Config holds configuration for the Local News API client.
type Config struct {
	// APIToken is the static API credential. May be empty; every request
	// then short-circuits to domain.ErrMissingCredential before any
	// network call.
	APIToken string

	// BaseURL is the API base URL (default: the hosted endpoint).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond is the proactive throttle rate (default: 2).
	RequestsPerSecond float64
}

// Client calls the Local News API over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

// NewClient creates a Local News API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRate
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		token:   cfg.APIToken,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// Search performs an ad-hoc article search.
func (c *Client) Search(
	ctx context.Context, req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := c.post(ctx, endpointSearch, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchClustered performs a search with clustering enabled.
func (c *Client) SearchClustered(
	ctx context.Context, req domain.SearchRequest,
) (*domain.ClusteredResponse, error) {
	req.Clustering = true

	var resp domain.ClusteredResponse
	if err := c.post(ctx, endpointSearch, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LatestHeadlines returns recent headlines for the given locations.
func (c *Client) LatestHeadlines(
	ctx context.Context, req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := c.post(ctx, endpointHeadlines, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post issues one JSON POST and decodes the response into out. The request
// id ties log lines for one call together.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	if c.token == "" {
		logger.Warn("News API call skipped: no credential configured")
		return domain.ErrMissingCredential
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}

	reqID := uuid.NewString()
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encoding payload: %v", domain.ErrRequestFailed, err)
	}

	url := c.baseURL + endpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(APITokenHeader, c.token)

	logger.Debug("[%s] POST %s (%d bytes)", reqID, url, len(body))

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		logger.Warn("[%s] News API transport failure: %v", reqID, err)
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: timeout", domain.ErrRequestFailed)
		}
		return fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBody))
		logger.Warn("[%s] News API status %d: %s", reqID, httpResp.StatusCode, snippet)
		return fmt.Errorf("%w: %d", domain.ErrBadStatus, httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		logger.Warn("[%s] News API response undecodable: %v", reqID, err)
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	logger.Debug("[%s] News API response OK", reqID)
	return nil
}
