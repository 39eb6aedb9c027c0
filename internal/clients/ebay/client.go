package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/domain"
)

const defaultBaseURL = "https://www.ebay.com/sch/i.html"

// userAgent mirrors a desktop browser; the sold-listings page serves a
// stripped markup to unknown agents.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Client fetches completed/sold listings from eBay search pages
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a new eBay sold-listings client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: defaultBaseURL,
		log:     log.With().Str("client", "ebay").Logger(),
	}
}

// FetchSoldListings returns raw title+price pairs for completed sales
// matching the query. Ordering is whatever the page returns; zero results is
// not an error. Prices are returned as raw text and parsed downstream.
func (c *Client) FetchSoldListings(ctx context.Context, query string) ([]domain.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sold listings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from sold-listings search", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sold-listings markup: %w", err)
	}

	var candidates []domain.Candidate
	doc.Find(".s-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".s-item__title").Text())
		price := strings.TrimSpace(item.Find(".s-item__price").Text())
		if title == "" && price == "" {
			return
		}

		candidates = append(candidates, domain.Candidate{
			Title:    title,
			RawPrice: price,
			SoldDate: strings.TrimSpace(item.Find(".s-item__caption").Text()),
		})
	})

	c.log.Debug().
		Str("query", query).
		Int("candidates", len(candidates)).
		Msg("Fetched sold listings")

	return candidates, nil
}

// searchURL builds the completed+sold search URL for a query
func (c *Client) searchURL(query string) string {
	params := url.Values{}
	params.Set("_nkw", query)
	params.Set("LH_Complete", "1")
	params.Set("LH_Sold", "1")
	params.Set("_ipg", "60")

	return c.baseURL + "?" + params.Encode()
}
