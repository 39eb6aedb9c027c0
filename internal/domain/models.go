package domain

import "strings"

// Sport identifies the sport printed on a card
type Sport string

const (
	SportHockey     Sport = "hockey"
	SportBasketball Sport = "basketball"
	SportBaseball   Sport = "baseball"
	SportFootball   Sport = "football"
	SportSoccer     Sport = "soccer"
	SportOther      Sport = "other"
)

// Sentinel values used by the attribute-extraction step for fields it could
// not read off the card image. They must be treated as "absent" everywhere,
// never as literal field values.
const (
	CardNumberNotVisible = "not visible"
	ParallelBase         = "base"
	AttributeUnknown     = "unknown"
)

// CardQuery holds the resolved attributes of the card being priced.
// Player is always present; every other field may be absent.
type CardQuery struct {
	Player     string `json:"player"`
	Year       string `json:"year"`
	Brand      string `json:"brand"`
	Series     string `json:"series"`
	Sport      Sport  `json:"sport"`
	CardNumber string `json:"card_number"`
	Parallel   string `json:"parallel"`
}

// HasCardNumber reports whether the request carries a usable card number.
func (c CardQuery) HasCardNumber() bool {
	return IsKnown(c.CardNumber) && c.CardNumber != CardNumberNotVisible
}

// WantsParallel reports whether the request targets a specific parallel
// rather than the base card.
func (c CardQuery) WantsParallel() bool {
	return IsKnown(c.Parallel) && c.Parallel != ParallelBase
}

// IsKnown reports whether an extracted attribute carries real information.
func IsKnown(field string) bool {
	return field != "" && field != AttributeUnknown
}

// Candidate is one raw sold-listing data point before cleaning.
// RawPrice is the price text as scraped ("$12.50", "1,299.99"); Price is
// populated by the noise filter for candidates that survive it.
type Candidate struct {
	Title    string  `json:"title"`
	RawPrice string  `json:"raw_price"`
	Price    float64 `json:"price"`
	ItemID   string  `json:"item_id,omitempty"`
	SoldDate string  `json:"sold_date,omitempty"`
}

// CatalogCandidate is one entry returned by a structured pricing catalog.
// Price is in dollars; catalog integrations that report minor units convert
// at their boundary. A zero price means the search row carried no price and
// a detail fetch is needed.
type CatalogCandidate struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	SetName     string  `json:"set_name"`
	Price       float64 `json:"price"`
}

// CombinedText returns the lower-cased product+set text that variant, sport
// and ranking heuristics match against.
func (c CatalogCandidate) CombinedText() string {
	return strings.ToLower(strings.TrimSpace(c.ProductName + " " + c.SetName))
}

// PriceSource identifies where a resolved price came from.
type PriceSource string

const (
	SourceLiveListings PriceSource = "live-listings"
	SourceCatalog      PriceSource = "catalog"
)

// PriceRange is the observed low/high band of the kept sample.
type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// PriceResult is the pipeline output. Price is present iff Found; when a
// range is present the price lies within it inclusive and SampleCount >= 1.
type PriceResult struct {
	Found       bool        `json:"found"`
	Price       float64     `json:"price,omitempty"`
	SampleCount int         `json:"sample_count"`
	PriceRange  *PriceRange `json:"price_range,omitempty"`
	Source      PriceSource `json:"source,omitempty"`
	Message     string      `json:"message,omitempty"`
}
