package pricing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/domain"
)

// ListingsFetcher is the live-listings collaborator contract: raw title and
// price pairs for completed sales matching the query, in no particular order.
type ListingsFetcher interface {
	FetchSoldListings(ctx context.Context, query string) ([]domain.Candidate, error)
}

// CatalogSearcher is the catalog collaborator contract. Search rows may lack
// a price, in which case FetchDetail supplies it (the two-step catalog shape);
// integrations whose search rows embed prices never get a detail call.
type CatalogSearcher interface {
	SearchCatalog(ctx context.Context, query string) ([]domain.CatalogCandidate, error)
	FetchDetail(ctx context.Context, id string) (float64, error)
}

// ListingsSource resolves a price from live sold listings: noise-filter the
// raw candidates, then IQR-summarize the surviving prices.
type ListingsSource struct {
	fetcher  ListingsFetcher
	keywords *Keywords
	log      zerolog.Logger
}

// NewListingsSource creates the live-listings source.
func NewListingsSource(fetcher ListingsFetcher, keywords *Keywords, log zerolog.Logger) *ListingsSource {
	return &ListingsSource{
		fetcher:  fetcher,
		keywords: keywords,
		log:      log.With().Str("source", "live-listings").Logger(),
	}
}

// Name returns the source identifier.
func (s *ListingsSource) Name() string {
	return string(domain.SourceLiveListings)
}

// Fetch implements Source.
func (s *ListingsSource) Fetch(ctx context.Context, card domain.CardQuery) (*domain.PriceResult, error) {
	query := BuildQuery(card)

	raw, err := s.fetcher.FetchSoldListings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoData
	}

	cleaned := s.keywords.FilterListings(raw)
	if len(cleaned) == 0 {
		return nil, ErrAllFiltered
	}

	prices := make([]float64, len(cleaned))
	for i, c := range cleaned {
		prices[i] = c.Price
	}

	summary := Summarize(prices)
	if summary == nil {
		return nil, ErrAllFiltered
	}

	s.log.Debug().
		Str("query", query).
		Int("raw", len(raw)).
		Int("kept", summary.Count).
		Msg("Sold listings summarized")

	return &domain.PriceResult{
		Found:       true,
		Price:       summary.Mean,
		SampleCount: summary.Count,
		PriceRange:  &domain.PriceRange{Low: summary.Low, High: summary.High},
		Source:      domain.SourceLiveListings,
	}, nil
}

// CatalogSource resolves a reference price from a structured catalog: filter
// candidates against the request intent, rank base requests, then take the
// first survivor with a positive price.
type CatalogSource struct {
	searcher CatalogSearcher
	keywords *Keywords
	log      zerolog.Logger
}

// NewCatalogSource creates the catalog source.
func NewCatalogSource(searcher CatalogSearcher, keywords *Keywords, log zerolog.Logger) *CatalogSource {
	return &CatalogSource{
		searcher: searcher,
		keywords: keywords,
		log:      log.With().Str("source", "catalog").Logger(),
	}
}

// Name returns the source identifier.
func (s *CatalogSource) Name() string {
	return string(domain.SourceCatalog)
}

// Fetch implements Source.
func (s *CatalogSource) Fetch(ctx context.Context, card domain.CardQuery) (*domain.PriceResult, error) {
	query := BuildQuery(card)

	candidates, err := s.searcher.SearchCatalog(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoData
	}

	matched := s.keywords.FilterCatalog(candidates, card)
	if len(matched) == 0 {
		return nil, ErrAllFiltered
	}

	// Parallel requests are already narrowed by the strict intent match;
	// source-native order stands. Base requests get the full ranking.
	if !card.WantsParallel() {
		matched = s.keywords.Rank(matched, card.Sport)
	}

	best := matched[0]
	price := best.Price
	if price <= 0 {
		price, err = s.searcher.FetchDetail(ctx, best.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
	}
	if price <= 0 {
		return nil, ErrAllFiltered
	}

	s.log.Debug().
		Str("query", query).
		Str("product", best.ProductName).
		Str("set", best.SetName).
		Int("matched", len(matched)).
		Msg("Catalog match selected")

	return &domain.PriceResult{
		Found:       true,
		Price:       price,
		SampleCount: 1,
		Source:      domain.SourceCatalog,
	}, nil
}
