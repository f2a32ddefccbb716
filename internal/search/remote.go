package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
)

// RemoteClient delegates inventory searches to an external search service.
type RemoteClient struct {
	httpClient *resty.Client
}

// NewRemoteClient builds a client for the search service at baseURL.
func NewRemoteClient(baseURL string) *RemoteClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &RemoteClient{httpClient: restyClient}
}

// Search queries the remote service with the given criteria. Empty criteria
// are omitted from the query string entirely; some backends treat an empty
// parameter as "match the empty string", so absent must stay absent. On any
// transport or HTTP failure the result is nil and an error, never partial
// data.
func (c *RemoteClient) Search(ctx context.Context, criteria Criteria) ([]models.InventoryItem, error) {
	req := c.httpClient.R().SetContext(ctx)

	if criteria.Text != "" {
		req.SetQueryParam("item_name", criteria.Text)
	}
	if criteria.Category != "" {
		req.SetQueryParam("category", criteria.Category)
	}
	if criteria.Supplier != "" {
		req.SetQueryParam("supplier_name", criteria.Supplier)
	}
	if criteria.Status != "" {
		req.SetQueryParam("status", criteria.Status)
	}

	var items []models.InventoryItem
	resp, err := req.SetResult(&items).Get("/search")
	if err != nil {
		return nil, fmt.Errorf("remote search request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote search returned status %d", resp.StatusCode())
	}
	return items, nil
}
