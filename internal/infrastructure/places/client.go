package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/patriot-thanks/backend/internal/domain"
	"golang.org/x/time/rate"
)

// fieldMask limits the place-details payload to the fields the duplicate
// check and add-business prefill actually consume.
const fieldMask = "id,displayName,formattedAddress,nationalPhoneNumber,websiteUri,location,addressComponents"

// Client handles communication with the mapping provider's Places API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// placeDetails is the wire shape of a place-details response
type placeDetails struct {
	ID                  string             `json:"id"`
	DisplayName         localizedText      `json:"displayName"`
	FormattedAddress    string             `json:"formattedAddress"`
	NationalPhoneNumber string             `json:"nationalPhoneNumber"`
	WebsiteURI          string             `json:"websiteUri"`
	Location            latLng             `json:"location"`
	AddressComponents   []addressComponent `json:"addressComponents"`
}

type localizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type addressComponent struct {
	LongText  string   `json:"longText"`
	ShortText string   `json:"shortText"`
	Types     []string `json:"types"`
}

// NewClient creates a new places API client
func NewClient(apiKey, baseURL string) *Client {
	// One details fetch per marker click; a small steady rate is plenty
	limiter := rate.NewLimiter(rate.Limit(10), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// GetPlaceDetails fetches the details for one place and flattens them into
// the domain ExternalPlace shape.
func (c *Client) GetPlaceDetails(ctx context.Context, placeID string) (*domain.ExternalPlace, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/places/%s", c.baseURL, placeID)
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlacesAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrPlaceNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrPlacesAPIFailure, resp.StatusCode, string(body))
	}

	var details placeDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if c.debug {
		log.Printf("[PLACES] Fetched details for %s: %q, %q", placeID, details.DisplayName.Text, details.FormattedAddress)
	}

	return mapToExternalPlace(&details), nil
}
