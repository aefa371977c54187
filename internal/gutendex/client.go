// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gutendex queries the Gutendex bibliographic catalog API and
// decodes its paginated JSON search responses.
package gutendex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mariocortezBEST/literalura/internal/httputil"
	"github.com/mariocortezBEST/literalura/pkg/types"
)

// searchBase is the Gutendex search endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchBase = "https://gutendx.com/books/"

const (
	defaultTimeout           = 30 * time.Second
	defaultUserAgent         = "literalura/0.1"
	defaultRequestsPerSecond = 2
)

// Client is a stateless Gutendex API client. Construct it once at process
// start and pass it into the ingestion pipeline; it is safe for concurrent
// use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	limiter    *rate.Limiter
}

// NewClient builds a Client from cfg, applying defaults for unset fields.
func NewClient(cfg types.CatalogConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = searchBase
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: cfg.MaxRetries,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Search queries the catalog for books matching the free-text title and
// returns the first result page. A non-200 status or a network failure
// yields a *TransportError; an undecodable body yields a *ParseError.
func (c *Client) Search(ctx context.Context, title string) (*SearchResponse, error) {
	params := url.Values{"search": {strings.TrimSpace(title)}}
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: reqURL, Status: resp.StatusCode}
	}

	var sr SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &sr, nil
}
