package handler

import "net/http"

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// GetHealth handles GET /api/health.
// It returns HTTP 200 with {"status":"healthy"} when the server is running.
// The council API is not contacted.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: timestamp(s.now())})
}
