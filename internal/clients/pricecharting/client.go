package pricecharting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/domain"
)

const defaultBaseURL = "https://www.pricecharting.com"

// Client is a PriceCharting catalog API client. The API reports prices in
// pennies; everything leaving this client is in dollars, so the pipeline
// only ever sees one currency unit.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
	log     zerolog.Logger
}

// NewClient creates a new PriceCharting client
func NewClient(token string, log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: defaultBaseURL,
		token:   token,
		log:     log.With().Str("client", "pricecharting").Logger(),
	}
}

// SearchCatalog searches catalog products for a query. Rows whose search
// payload lacks a loose price come back with Price 0, signalling that a
// detail fetch is needed.
func (c *Client) SearchCatalog(ctx context.Context, query string) ([]domain.CatalogCandidate, error) {
	params := url.Values{}
	params.Set("t", c.token)
	params.Set("q", query)

	var payload productsResponse
	if err := c.getJSON(ctx, "/api/products", params, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "success" {
		return nil, fmt.Errorf("catalog search failed: %s", payload.ErrorMessage)
	}

	candidates := make([]domain.CatalogCandidate, 0, len(payload.Products))
	for _, p := range payload.Products {
		candidates = append(candidates, domain.CatalogCandidate{
			ID:          p.ID,
			ProductName: p.ProductName,
			SetName:     p.ConsoleName,
			Price:       penniesToDollars(p.LoosePrice),
		})
	}

	c.log.Debug().
		Str("query", query).
		Int("candidates", len(candidates)).
		Msg("Catalog search completed")

	return candidates, nil
}

// FetchDetail returns the loose price in dollars for a single product. This
// is the second step of the two-step catalog shape, used when a search row
// carries no price.
func (c *Client) FetchDetail(ctx context.Context, id string) (float64, error) {
	params := url.Values{}
	params.Set("t", c.token)
	params.Set("id", id)

	var payload productResponse
	if err := c.getJSON(ctx, "/api/product", params, &payload); err != nil {
		return 0, err
	}
	if payload.Status != "success" {
		return 0, fmt.Errorf("catalog detail fetch failed: %s", payload.ErrorMessage)
	}

	return penniesToDollars(payload.LoosePrice), nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from catalog API", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return nil
}

func penniesToDollars(pennies int64) float64 {
	return float64(pennies) / 100
}
