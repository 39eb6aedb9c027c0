package pricing

import (
	"strconv"
	"strings"

	"github.com/aristath/cardpricer/internal/domain"
)

// Plausibility band for a single raw-card sale, inclusive on both ends.
// Below it is data-entry garbage; above it is bulk lots posing as singles.
const (
	minPlausiblePrice = 0.50
	maxPlausiblePrice = 10000.0
)

// Listing titles that are page furniture rather than sales.
var placeholderTitles = []string{
	"shop on ebay",
	"new listing",
}

// FilterListings drops sold-listing candidates that carry no usable price
// signal: placeholder/sponsored titles, graded cards, unparseable prices, and
// prices outside the plausibility band. Each rule is an independent exclusion
// predicate; a malformed candidate is dropped silently, never an error. Input
// order is preserved. An empty result is a normal outcome meaning "no data".
func (k *Keywords) FilterListings(raw []domain.Candidate) []domain.Candidate {
	kept := make([]domain.Candidate, 0, len(raw))

	for _, c := range raw {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			continue
		}
		if isPlaceholderTitle(title) || containsAny(title, k.Sponsored) {
			continue
		}
		if containsAny(title, k.Grading) {
			continue
		}

		price, ok := parsePrice(c.RawPrice)
		if !ok {
			continue
		}
		if price < minPlausiblePrice || price > maxPlausiblePrice {
			continue
		}

		c.Price = price
		kept = append(kept, c)
	}

	return kept
}

func isPlaceholderTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, p := range placeholderTitles {
		if lower == p {
			return true
		}
	}
	return false
}

// parsePrice extracts a positive dollar amount from raw listing price text,
// e.g. "$1,299.99" or "USD 12.50". Ranged prices ("$10.00 to $15.00") use the
// first amount. Returns false when no positive number can be parsed.
func parsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	// Keep the first token that survives symbol stripping.
	for _, token := range strings.Fields(s) {
		cleaned := strings.Map(func(r rune) rune {
			switch {
			case r >= '0' && r <= '9', r == '.', r == '-':
				return r
			default:
				return -1
			}
		}, strings.ReplaceAll(token, ",", ""))

		if cleaned == "" {
			continue
		}

		price, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || price <= 0 {
			continue
		}
		return price, true
	}

	return 0, false
}
