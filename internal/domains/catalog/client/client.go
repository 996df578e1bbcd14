package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bookshop-api/internal/domains/catalog/model"
)

// FeedClient fetches the raw book list from the external catalog feed.
// One plain GET, no auth, no pagination.
type FeedClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewFeedClient(endpoint string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchBooks retrieves and decodes the full feed. Order is the feed's
// order; the caller applies the pricing rule on top of it.
func (c *FeedClient) FetchBooks(ctx context.Context) ([]model.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch failed: unexpected status %d", resp.StatusCode)
	}

	var books []model.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode catalog feed: %w", err)
	}

	return books, nil
}
