package handlers

import (
	"net/http"

	"github.com/kent-titlemap/internal/matcher"
)

// MetaHandler serves dataset metadata for the form dropdowns
type MetaHandler struct {
	Engine *matcher.Engine
	Config *Config
}

// MetaResponse lists the filter options the dataset supports
type MetaResponse struct {
	Rows      int      `json:"rows"`
	Mode      string   `json:"mode"`
	Grades    []string `json:"grades"`
	Countries []string `json:"countries"`
}

// Meta returns grades, countries and row count for the loaded dataset
func (h *MetaHandler) Meta(w http.ResponseWriter, r *http.Request) {
	table := h.Engine.Table()
	writeJSON(w, http.StatusOK, MetaResponse{
		Rows:      table.Len(),
		Mode:      h.Config.Mode,
		Grades:    table.Grades(),
		Countries: table.Countries(),
	})
}

// Health reports service liveness and dataset size
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"rows":   h.Engine.Table().Len(),
	})
}
