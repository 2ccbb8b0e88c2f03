package handlers

import (
	"encoding/json"
	"net/http"
)

// Config mirrors the server feature toggles without importing the web
// package (avoids an import cycle)
type Config struct {
	Features struct {
		ExportEnabled  bool
		SuggestEnabled bool
	}
	Mode string
}

// MatchRequest is the JSON body shared by the match and export endpoints
type MatchRequest struct {
	Title   string `json:"title"`
	Grade   string `json:"grade,omitempty"`
	Country string `json:"country,omitempty"`
}

// MatchRow is one result table row
type MatchRow struct {
	ClientJobTitle string `json:"client_job_title"`
	PositionTitle  string `json:"position_title"`
	Grade          string `json:"grade"`
	Country        string `json:"country"`
	JobCode        string `json:"job_code"`
	Probability    string `json:"probability"`
}

// MatchResponse is the JSON reply for the match endpoint
type MatchResponse struct {
	Query   string     `json:"query"`
	Mode    string     `json:"mode"`
	Exact   bool       `json:"exact"`
	Warning string     `json:"warning,omitempty"`
	Matches []MatchRow `json:"matches"`
}

// ErrorResponse is the JSON shape for user-visible errors
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
