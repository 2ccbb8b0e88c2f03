package handlers

import (
	"net/http"
	"strconv"

	"github.com/kent-titlemap/internal/matcher"
	"github.com/kent-titlemap/internal/normalize"
)

// SuggestHandler serves title typeahead for the client role field
type SuggestHandler struct {
	Engine *matcher.Engine
	Config *Config
}

// Suggest returns reference titles fuzzy-matching the partial query
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	partial := query.Get("q")
	if normalize.IsBlank(partial) {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := 10
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 50 {
		limit = 50
	}

	titles := matcher.Suggest(h.Engine.Table(), partial, limit)
	if titles == nil {
		titles = []string{}
	}

	writeJSON(w, http.StatusOK, map[string][]string{"titles": titles})
}
