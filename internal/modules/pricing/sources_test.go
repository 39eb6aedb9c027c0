package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/cardpricer/internal/domain"
)

type fakeFetcher struct {
	candidates []domain.Candidate
	err        error
}

func (f *fakeFetcher) FetchSoldListings(ctx context.Context, query string) ([]domain.Candidate, error) {
	return f.candidates, f.err
}

type fakeSearcher struct {
	candidates  []domain.CatalogCandidate
	searchErr   error
	detailPrice float64
	detailErr   error
	detailCalls int
}

func (f *fakeSearcher) SearchCatalog(ctx context.Context, query string) ([]domain.CatalogCandidate, error) {
	return f.candidates, f.searchErr
}

func (f *fakeSearcher) FetchDetail(ctx context.Context, id string) (float64, error) {
	f.detailCalls++
	return f.detailPrice, f.detailErr
}

func TestListingsSource_SummarizesCleanListings(t *testing.T) {
	fetcher := &fakeFetcher{candidates: []domain.Candidate{
		{Title: "Bedard YG rookie", RawPrice: "$10.00"},
		{Title: "Bedard YG rookie", RawPrice: "$12.00"},
		{Title: "Bedard YG rookie", RawPrice: "$11.00"},
		{Title: "Bedard YG rookie lot", RawPrice: "$500.00"},
	}}

	src := NewListingsSource(fetcher, DefaultKeywords(), zerolog.Nop())
	result, err := src.Fetch(context.Background(), testCard())

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 11.00, result.Price)
	assert.Equal(t, 3, result.SampleCount)
	require.NotNil(t, result.PriceRange)
	assert.Equal(t, 10.0, result.PriceRange.Low)
	assert.Equal(t, 12.0, result.PriceRange.High)
	assert.Equal(t, domain.SourceLiveListings, result.Source)
}

func TestListingsSource_AllGradedIsAllFiltered(t *testing.T) {
	fetcher := &fakeFetcher{candidates: []domain.Candidate{
		{Title: "PSA 10 Connor Bedard rookie", RawPrice: "$250.00"},
		{Title: "BGS 9.5 Connor Bedard rookie", RawPrice: "$180.00"},
	}}

	src := NewListingsSource(fetcher, DefaultKeywords(), zerolog.Nop())
	result, err := src.Fetch(context.Background(), testCard())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAllFiltered)
}

func TestListingsSource_EmptyIsNoData(t *testing.T) {
	src := NewListingsSource(&fakeFetcher{}, DefaultKeywords(), zerolog.Nop())
	_, err := src.Fetch(context.Background(), testCard())

	assert.ErrorIs(t, err, ErrNoData)
}

func TestListingsSource_FetchFailureIsSourceUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection reset")}

	src := NewListingsSource(fetcher, DefaultKeywords(), zerolog.Nop())
	_, err := src.Fetch(context.Background(), testCard())

	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

// All listings graded -> live listings yields nothing -> catalog answers.
func TestFallback_GradedListingsToCatalog(t *testing.T) {
	fetcher := &fakeFetcher{candidates: []domain.Candidate{
		{Title: "PSA 10 Connor Bedard Young Guns", RawPrice: "$250.00"},
	}}
	searcher := &fakeSearcher{candidates: []domain.CatalogCandidate{
		{ID: "1", ProductName: "Connor Bedard #451 Young Guns", SetName: "Hockey Cards 2023-24 Upper Deck", Price: 42.00},
	}}

	r := NewResolver([]Source{
		NewListingsSource(fetcher, DefaultKeywords(), zerolog.Nop()),
		NewCatalogSource(searcher, DefaultKeywords(), zerolog.Nop()),
	}, time.Second, zerolog.Nop())

	result := r.Resolve(context.Background(), testCard())

	require.True(t, result.Found)
	assert.Equal(t, domain.SourceCatalog, result.Source)
	assert.Equal(t, 42.00, result.Price)
}

func TestCatalogSource_PicksRankedBaseMatch(t *testing.T) {
	searcher := &fakeSearcher{candidates: []domain.CatalogCandidate{
		{ID: "premier", ProductName: "Connor Bedard #451", SetName: "Hockey Cards 2023-24 Upper Deck Premier", Price: 80.00},
		{ID: "yg", ProductName: "Connor Bedard #451 Young Guns", SetName: "Hockey Cards 2023-24 Upper Deck", Price: 42.00},
	}}

	src := NewCatalogSource(searcher, DefaultKeywords(), zerolog.Nop())
	result, err := src.Fetch(context.Background(), testCard())

	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 42.00, result.Price)
	assert.Equal(t, 1, result.SampleCount)
}

func TestCatalogSource_TwoStepDetailFetch(t *testing.T) {
	searcher := &fakeSearcher{
		candidates: []domain.CatalogCandidate{
			{ID: "yg", ProductName: "Connor Bedard #451 Young Guns", SetName: "Hockey Cards 2023-24 Upper Deck"},
		},
		detailPrice: 37.50,
	}

	src := NewCatalogSource(searcher, DefaultKeywords(), zerolog.Nop())
	result, err := src.Fetch(context.Background(), testCard())

	require.NoError(t, err)
	assert.Equal(t, 37.50, result.Price)
	assert.Equal(t, 1, searcher.detailCalls)
}

func TestCatalogSource_EmbeddedPriceSkipsDetail(t *testing.T) {
	searcher := &fakeSearcher{
		candidates: []domain.CatalogCandidate{
			{ID: "yg", ProductName: "Connor Bedard #451 Young Guns", SetName: "Hockey Cards 2023-24 Upper Deck", Price: 42.00},
		},
	}

	src := NewCatalogSource(searcher, DefaultKeywords(), zerolog.Nop())
	_, err := src.Fetch(context.Background(), testCard())

	require.NoError(t, err)
	assert.Equal(t, 0, searcher.detailCalls)
}

func TestCatalogSource_NoMatchIsAllFiltered(t *testing.T) {
	searcher := &fakeSearcher{candidates: []domain.CatalogCandidate{
		{ID: "1", ProductName: "Some Player", SetName: "Basketball Cards 2024 Hoops", Price: 5.00},
	}}

	src := NewCatalogSource(searcher, DefaultKeywords(), zerolog.Nop())
	_, err := src.Fetch(context.Background(), testCard())

	assert.ErrorIs(t, err, ErrAllFiltered)
}

func TestCatalogSource_ZeroDetailPriceIsAllFiltered(t *testing.T) {
	searcher := &fakeSearcher{
		candidates: []domain.CatalogCandidate{
			{ID: "yg", ProductName: "Connor Bedard #451 Young Guns", SetName: "Hockey Cards 2023-24 Upper Deck"},
		},
		detailPrice: 0,
	}

	src := NewCatalogSource(searcher, DefaultKeywords(), zerolog.Nop())
	_, err := src.Fetch(context.Background(), testCard())

	assert.ErrorIs(t, err, ErrAllFiltered)
}
