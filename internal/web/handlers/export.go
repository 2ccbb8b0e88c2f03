package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kent-titlemap/internal/matcher"
)

// csvHeader matches the displayed results table column for column
var csvHeader = []string{"Client Job Title", "Position Title", "Grade", "Country", "Job Code", "Probability"}

// ExportHandler streams match results as a CSV download
type ExportHandler struct {
	Engine *matcher.Engine
	Config *Config
}

// Export runs the same match as the JSON endpoint and returns the result
// rows as a CSV attachment, so the download always equals the displayed
// table
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !h.Config.Features.ExportEnabled {
		writeError(w, http.StatusForbidden, "export feature disabled")
		return
	}

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
		result = &matcher.Result{}
	case err != nil:
		writeError(w, http.StatusInternalServerError, "matching failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="kent_title_mapping.csv"`)

	writer := csv.NewWriter(w)
	writer.Write(csvHeader)
	for _, row := range matchRows(result) {
		writer.Write([]string{
			row.ClientJobTitle,
			row.PositionTitle,
			row.Grade,
			row.Country,
			row.JobCode,
			row.Probability,
		})
	}
	writer.Flush()
}
