package handler

import (
	"net/http"

	"github.com/pkordes/binday/backend/spec"
)

// OpenAPI handles GET /openapi.yaml by serving the embedded document.
func OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
