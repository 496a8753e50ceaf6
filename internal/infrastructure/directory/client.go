package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/patriot-thanks/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the internal business-search REST API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// searchResponse is the wire shape of the directory search endpoint
type searchResponse struct {
	Results []domain.BusinessRecord `json:"results"`
}

// NewClient creates a new directory API client
func NewClient(baseURL string) *Client {
	// Keep well under the backend's per-client ceiling; bursts cover a
	// user issuing a search and a duplicate check back to back.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<(attempt-1)) * time.Millisecond
}

// Search queries the directory for businesses matching the given parameters.
// Parameters combine with AND semantics server-side; empty fields are omitted.
func (c *Client) Search(ctx context.Context, query domain.DirectoryQuery) ([]domain.BusinessRecord, error) {
	if c.debug {
		log.Printf("[DIRECTORY] Search called with query: %+v", query)
	}

	endpoint := fmt.Sprintf("%s/search", c.baseURL)
	params := url.Values{}
	params.Add("operation", "search")
	if query.ExternalPlaceID != "" {
		params.Add("google_place_id", query.ExternalPlaceID)
	}
	if query.BusinessName != "" {
		params.Add("businessName", query.BusinessName)
	}
	if query.Address != "" {
		params.Add("address", query.Address)
	}
	if query.City != "" {
		params.Add("city", query.City)
	}
	if query.State != "" {
		params.Add("state", query.State)
	}
	if query.Zip != "" {
		params.Add("zip", query.Zip)
	}
	if query.Category != "" {
		params.Add("category", query.Category)
	}
	if query.ServiceType != "" {
		params.Add("serviceType", query.ServiceType)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry transient failures; a failed lookup ultimately degrades to
	// "no results" at the reconciler, so retries stay short.
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[DIRECTORY] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if !sleepCtx(ctx, exponentialBackoff(attempt)) {
				return nil, ctx.Err()
			}
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[DIRECTORY] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrLookupFailed, resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Client errors will not heal on retry
				return nil, lastErr
			}
			if !sleepCtx(ctx, exponentialBackoff(attempt)) {
				return nil, ctx.Err()
			}
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[DIRECTORY] Found %d businesses", len(searchResp.Results))
		}
		return searchResp.Results, nil
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, lastErr)
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PatriotThanks/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}

	return resp, nil
}

// sleepCtx waits for d or until the context is done, reporting whether the
// full wait completed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
