package pricing

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/domain"
)

// Recorder saves completed resolutions for diagnostics. The pipeline never
// reads recorded data; a recorder failure must not fail the request.
type Recorder interface {
	Record(card domain.CardQuery, query string, result domain.PriceResult) error
}

// Handler handles price resolution HTTP requests
type Handler struct {
	resolver *Resolver
	recorder Recorder
	log      zerolog.Logger
}

// NewHandler creates a new pricing handler. recorder may be nil.
func NewHandler(resolver *Resolver, recorder Recorder, log zerolog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		recorder: recorder,
		log:      log.With().Str("handler", "pricing").Logger(),
	}
}

// HandleResolvePrice handles POST / - resolve a price for a card query
func (h *Handler) HandleResolvePrice(w http.ResponseWriter, r *http.Request) {
	var card domain.CardQuery
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(card.Player) == "" {
		http.Error(w, "player is required", http.StatusBadRequest)
		return
	}
	if card.Sport == "" {
		card.Sport = domain.SportOther
	}

	result := h.resolver.Resolve(r.Context(), card)

	if h.recorder != nil {
		if err := h.recorder.Record(card, BuildQuery(card), result); err != nil {
			h.log.Warn().Err(err).Msg("Failed to record resolution")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
