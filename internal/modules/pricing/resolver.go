package pricing

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/domain"
)

// Source is one named price source. Fetch returns a found PriceResult or an
// error from the taxonomy in errors.go; it must respect ctx cancellation and
// release any underlying client resources on every exit path.
type Source interface {
	Name() string
	Fetch(ctx context.Context, card domain.CardQuery) (*domain.PriceResult, error)
}

// Resolver drives sources in priority order and stops at the first one that
// yields a usable price. The order is deliberate: live sold listings reflect
// current realized prices and always win over the slower-moving catalog
// reference, which is a fallback only.
type Resolver struct {
	sources []Source
	timeout time.Duration
	log     zerolog.Logger
}

// NewResolver creates a resolver over sources in priority order.
func NewResolver(sources []Source, timeout time.Duration, log zerolog.Logger) *Resolver {
	return &Resolver{
		sources: sources,
		timeout: timeout,
		log:     log.With().Str("component", "resolver").Logger(),
	}
}

// Resolve runs the pipeline for one card. Each source gets its own timeout;
// a timeout or any taxonomy error counts as an empty slot and triggers
// fallback, with no per-source retries. Every failure mode degrades to
// Found:false with a message — Resolve never returns an error.
func (r *Resolver) Resolve(ctx context.Context, card domain.CardQuery) domain.PriceResult {
	for _, src := range r.sources {
		result := r.trySource(ctx, src, card)
		if result != nil && result.Found {
			r.log.Info().
				Str("source", src.Name()).
				Str("player", card.Player).
				Float64("price", result.Price).
				Int("samples", result.SampleCount).
				Msg("Price resolved")
			return *result
		}

		if ctx.Err() != nil {
			break
		}
	}

	return domain.PriceResult{
		Found:   false,
		Message: "no pricing available from any source",
	}
}

func (r *Resolver) trySource(ctx context.Context, src Source, card domain.CardQuery) *domain.PriceResult {
	srcCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := src.Fetch(srcCtx, card)
	if err != nil {
		r.log.Warn().
			Err(err).
			Str("source", src.Name()).
			Str("player", card.Player).
			Msg("Source yielded no price, falling back")
		return nil
	}

	return result
}
