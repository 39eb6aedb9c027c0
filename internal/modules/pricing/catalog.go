package pricing

import (
	"strings"

	"github.com/aristath/cardpricer/internal/domain"
)

// FilterCatalog drops catalog candidates that do not match the request's
// intent. Matching runs on the lower-cased product+set text:
//
//  1. "oversized" products are always excluded (different product category).
//  2. Hockey and basketball requests require the sport name in the text;
//     other sports are named too inconsistently in catalog data to filter.
//  3. A parallel request requires its exact parallel string; a base request
//     excludes anything containing a variant keyword. This is what separates
//     a plain base card from chase/insert variants of the same player.
//  4. When the request carries a card number, the product name must contain
//     the literal "#<number>" token.
//
// Output order is whatever the source returned; ranking is a separate step.
// An empty result means "no catalog entry matches", not an error.
func (k *Keywords) FilterCatalog(candidates []domain.CatalogCandidate, card domain.CardQuery) []domain.CatalogCandidate {
	kept := make([]domain.CatalogCandidate, 0, len(candidates))

	for _, cand := range candidates {
		combined := cand.CombinedText()

		if strings.Contains(combined, "oversized") {
			continue
		}

		switch card.Sport {
		case domain.SportHockey:
			if !strings.Contains(combined, "hockey") {
				continue
			}
		case domain.SportBasketball:
			if !strings.Contains(combined, "basketball") {
				continue
			}
		}

		if card.WantsParallel() {
			if !strings.Contains(combined, strings.ToLower(card.Parallel)) {
				continue
			}
		} else if containsAny(combined, k.Variant) {
			continue
		}

		if card.HasCardNumber() {
			token := "#" + strings.ToLower(strings.TrimSpace(card.CardNumber))
			if !strings.Contains(strings.ToLower(cand.ProductName), token) {
				continue
			}
		}

		kept = append(kept, cand)
	}

	return kept
}
