package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"retailedge/internal/assemble"
	"retailedge/internal/errors"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	ProjectID string `json:"project_id"`
	FileURL   string `json:"file_url"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "RetailEdge backend is running"})
}

// handleAnalyze runs the analysis cycle for one project. Malformed
// requests get a 400; everything past request validation answers 200 with
// either the result payload or the error envelope, so the dashboard can
// always decode the same shape.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, assemble.AssembleError(errors.InvalidInput("request body must be JSON with project_id and file_url")))
		return
	}

	if _, err := uuid.Parse(req.ProjectID); err != nil {
		writeJSON(w, http.StatusBadRequest, assemble.AssembleError(errors.InvalidInput("project_id must be a valid UUID")))
		return
	}
	if !strings.HasPrefix(req.FileURL, "http://") && !strings.HasPrefix(req.FileURL, "https://") {
		writeJSON(w, http.StatusBadRequest, assemble.AssembleError(errors.InvalidInput("file_url must be an http(s) URL")))
		return
	}

	result, errPayload := s.service.Run(r.Context(), req.ProjectID, req.FileURL)
	if errPayload != nil {
		writeJSON(w, http.StatusOK, errPayload)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}
