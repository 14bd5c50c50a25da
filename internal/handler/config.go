package handler

import "net/http"

// ConfigResponse is the body of GET /api/config.
type ConfigResponse struct {
	DefaultUPRN string `json:"default_uprn"`
}

// GetConfig handles GET /api/config. The web UI reads it to prefill the UPRN field.
func (s *Server) GetConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ConfigResponse{DefaultUPRN: s.defaultUPRN})
}

// StatusResponse is a bare acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

// ClearCache handles POST /api/cache/clear.
func (s *Server) ClearCache(w http.ResponseWriter, r *http.Request) {
	s.bins.ClearCache()
	s.log.InfoContext(r.Context(), "cache cleared")
	writeJSON(w, http.StatusOK, StatusResponse{Status: "cache cleared"})
}
