package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kent-titlemap/internal/matcher"
)

// MatchHandler handles title mapping requests
type MatchHandler struct {
	Engine *matcher.Engine
	Config *Config
}

// Match maps a client title to the closest standardized positions
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request")
		return
	}

	result, err := h.Engine.Match(matcher.Query{
		Title:   req.Title,
		Grade:   req.Grade,
		Country: req.Country,
	})

	switch {
	case errors.Is(err, matcher.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "please enter a client role")
		return
	case errors.Is(err, matcher.ErrNoMatches):
		// A warning, not a failure: the filters simply left nothing to rank
		writeJSON(w, http.StatusOK, MatchResponse{
			Query:   req.Title,
			Mode:    h.Config.Mode,
			Warning: "no titles match the selected filters",
			Matches: []MatchRow{},
		})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "matching failed")
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		Query:   req.Title,
		Mode:    h.Config.Mode,
		Exact:   result.Exact,
		Matches: matchRows(result),
	})
}

func matchRows(result *matcher.Result) []MatchRow {
	rows := make([]MatchRow, len(result.Matches))
	for i, m := range result.Matches {
		rows[i] = MatchRow{
			ClientJobTitle: m.Row.ClientJobTitle,
			PositionTitle:  m.Row.PositionTitle,
			Grade:          m.Row.Grade,
			Country:        m.Row.Country,
			JobCode:        m.Row.JobCode,
			Probability:    m.ProbabilityLabel(),
		}
	}
	return rows
}
