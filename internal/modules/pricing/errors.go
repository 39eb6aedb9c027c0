package pricing

import "errors"

// Failure taxonomy for a single source slot. All of these trigger fallback to
// the next source; none ever surfaces as a top-level error. The distinct
// values exist for diagnostics, so logs say why a source yielded nothing.
var (
	// ErrSourceUnavailable covers network, timeout and auth failures, plus
	// structural failures like changed markup.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoData means the source answered but returned zero candidates.
	ErrNoData = errors.New("no candidates returned")

	// ErrAllFiltered means candidates existed but none survived cleaning
	// or matching.
	ErrAllFiltered = errors.New("no candidates survived filtering")
)
