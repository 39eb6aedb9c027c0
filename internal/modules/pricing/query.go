package pricing

import (
	"strings"

	"github.com/aristath/cardpricer/internal/domain"
)

// BuildQuery turns card attributes into the search-term string sent to every
// source. Field order is canonical: year, brand, series, player, then card
// number (prefixed with #) and parallel when they carry real values. Unknown
// or empty fields are skipped, never emitted as blank tokens. URL escaping is
// the caller's job.
func BuildQuery(card domain.CardQuery) string {
	parts := make([]string, 0, 6)

	for _, field := range []string{card.Year, card.Brand, card.Series, card.Player} {
		if domain.IsKnown(field) {
			parts = append(parts, strings.TrimSpace(field))
		}
	}

	if card.HasCardNumber() {
		parts = append(parts, "#"+strings.TrimSpace(card.CardNumber))
	}

	if card.WantsParallel() {
		parts = append(parts, strings.TrimSpace(card.Parallel))
	}

	return strings.Join(parts, " ")
}
