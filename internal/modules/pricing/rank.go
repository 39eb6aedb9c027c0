package pricing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aristath/cardpricer/internal/domain"
)

// Flagship hockey sets are named like "Hockey Cards 2023-24 Upper Deck";
// premium lines append qualifiers after "Upper Deck" and fail the match.
var hockeyFlagshipPattern = regexp.MustCompile(`^hockey cards \d{4}(-\d{2})? upper deck$`)

// Rank orders filtered catalog candidates so the first entry is the most
// likely base-card match. Only base requests are ranked; a parallel request
// is already narrowed by the strict match in FilterCatalog.
//
// Tie-breaks, in order: sport-specific base/flagship detection (basketball
// and baseball prefer candidates free of deprioritized product lines; hockey
// prefers the flagship Upper Deck set, and within that Young Guns, the
// conventional rookie subset), then shorter set name, on the theory that
// flagship product names are shorter than qualified insert-set names. The
// sort is stable, so equal candidates keep source order and repeated runs
// produce identical output.
func (k *Keywords) Rank(candidates []domain.CatalogCandidate, sport domain.Sport) []domain.CatalogCandidate {
	ranked := make([]domain.CatalogCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		switch sport {
		case domain.SportBasketball, domain.SportBaseball:
			aBase := !containsAny(a.CombinedText(), k.Deprioritize)
			bBase := !containsAny(b.CombinedText(), k.Deprioritize)
			if aBase != bBase {
				return aBase
			}
		case domain.SportHockey:
			aFlagship := isHockeyFlagship(a.SetName)
			bFlagship := isHockeyFlagship(b.SetName)
			if aFlagship != bFlagship {
				return aFlagship
			}

			aYoungGuns := strings.Contains(a.CombinedText(), "young guns")
			bYoungGuns := strings.Contains(b.CombinedText(), "young guns")
			if aYoungGuns != bYoungGuns {
				return aYoungGuns
			}
		}

		return len(strings.Fields(a.SetName)) < len(strings.Fields(b.SetName))
	})

	return ranked
}

func isHockeyFlagship(setName string) bool {
	return hockeyFlagshipPattern.MatchString(strings.ToLower(strings.TrimSpace(setName)))
}
