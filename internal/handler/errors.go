package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/binday/backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. a missing or repeated query parameter).
func requestBody(message string) ErrorResponse {
	return errorBody("invalid_request", message)
}

// statusFor maps a domain error code to its HTTP status.
func statusFor(kind string) int {
	switch kind {
	case "invalid_request", "invalid_identifier":
		return http.StatusBadRequest
	case "address_not_found":
		return http.StatusNotFound
	case "upstream_unavailable":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and error body. Server-side failures are
// logged with their cause; internal errors are not echoed to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.Kind(err)
	status := statusFor(kind)

	message := domain.Message(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
		if kind == "internal" {
			message = "internal server error"
		}
	}
	writeJSON(w, status, errorBody(kind, message))
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
