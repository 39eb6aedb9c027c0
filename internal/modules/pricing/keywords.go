package pricing

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Keywords holds the term sets the cleaning and ranking heuristics match
// against. They are data, not logic: per-sport or per-brand extensions go in
// the TOML file, never in the filter code.
type Keywords struct {
	// Grading marks professionally authenticated/slabbed listings, which
	// trade at a different tier than raw cards and are always excluded.
	Grading []string `toml:"grading"`

	// Variant marks parallel/insert printings ("refractor", "prizm", ...).
	// A base-card request excludes candidates containing any of these; a
	// parallel request requires its own parallel string instead.
	Variant []string `toml:"variant"`

	// Deprioritize marks non-flagship product lines; the ranker sorts
	// basketball/baseball candidates containing them after base products.
	Deprioritize []string `toml:"deprioritize"`

	// Sponsored marks ad/boilerplate listing titles that carry no sale data.
	Sponsored []string `toml:"sponsored"`
}

// DefaultKeywords returns the built-in term sets, used when no keyword file
// is configured.
func DefaultKeywords() *Keywords {
	return &Keywords{
		Grading: []string{
			"psa", "bgs", "sgc", "cgc", "graded", "gem", "mint 10",
			"bccg", "hga", "slab",
		},
		Variant: []string{
			"refractor", "prizm", "chrome", "gold", "silver", "rainbow",
			"holo", "autograph", "auto", "patch", "numbered", "parallel",
			"insert", "sapphire", "mojo", "shimmer", "cracked ice",
		},
		Deprioritize: []string{
			"now", "chrome", "select", "prizm", "optic", "mosaic",
			"update", "opening day", "heritage", "bowman", "hoops",
			"donruss", "sticker",
		},
		Sponsored: []string{
			"shop on ebay", "sponsored", "new listing", "results matching fewer words",
		},
	}
}

// LoadKeywords reads term sets from a TOML file. Sets missing from the file
// fall back to the built-in defaults, so a config can override just one set.
func LoadKeywords(path string, log zerolog.Logger) (*Keywords, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("keywords file not found: %s", path)
	}

	kw := &Keywords{}
	if _, err := toml.DecodeFile(path, kw); err != nil {
		return nil, fmt.Errorf("failed to parse keywords file: %w", err)
	}

	defaults := DefaultKeywords()
	if len(kw.Grading) == 0 {
		kw.Grading = defaults.Grading
	}
	if len(kw.Variant) == 0 {
		kw.Variant = defaults.Variant
	}
	if len(kw.Deprioritize) == 0 {
		kw.Deprioritize = defaults.Deprioritize
	}
	if len(kw.Sponsored) == 0 {
		kw.Sponsored = defaults.Sponsored
	}

	log.Info().
		Str("path", path).
		Int("grading", len(kw.Grading)).
		Int("variant", len(kw.Variant)).
		Int("deprioritize", len(kw.Deprioritize)).
		Msg("Keyword sets loaded")

	return kw, nil
}

// containsAny reports whether text contains any of the terms as a
// case-insensitive substring. Substring matching is the documented contract;
// it can false-positive on e.g. a surname containing a term.
func containsAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
