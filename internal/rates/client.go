package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultURL is the USD-base rate table of the public exchange rate API.
const DefaultURL = "https://api.exchangerate-api.com/v4/latest/USD"

// Client fetches the current rate table over HTTP.
type Client struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewClient creates a rate client. The timeout bounds the whole fetch so a
// hung rate service cannot block dependent aggregations indefinitely.
func NewClient(url string, timeout time.Duration, log zerolog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log.With().Str("component", "rates").Logger(),
	}
}

type rateResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Fetch retrieves a fresh snapshot. Single attempt, no retry: callers fall
// back to the cached or static snapshot on failure.
func (c *Client) Fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to create rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("rate fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("rate service returned status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode rate response: %w", err)
	}

	ngn, ok := body.Rates["NGN"]
	if !ok || ngn <= 0 {
		return Snapshot{}, fmt.Errorf("rate response missing NGN rate")
	}

	snapshot := Snapshot{
		USD:       1,
		NGN:       ngn,
		GBP:       body.Rates["GBP"],
		FetchedAt: time.Now(),
	}

	c.log.Debug().Float64("ngn", snapshot.NGN).Float64("gbp", snapshot.GBP).Msg("fetched exchange rates")

	return snapshot, nil
}
