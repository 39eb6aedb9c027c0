package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// Handler handles resolution history HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new history handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "history").Logger(),
	}
}

// HandleList handles GET / - list recent resolutions
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	resolutions, err := h.repo.List(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list resolutions")
		http.Error(w, "Failed to list resolutions", http.StatusInternalServerError)
		return
	}

	if resolutions == nil {
		resolutions = []Resolution{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resolutions)
}
