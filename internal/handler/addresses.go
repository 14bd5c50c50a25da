package handler

import (
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// GetAddresses handles GET /api/addresses?postcode=.
func (s *Server) GetAddresses(w http.ResponseWriter, r *http.Request) {
	var postcode string
	if err := runtime.BindQueryParameter("form", true, true, "postcode", r.URL.Query(), &postcode); err != nil ||
		strings.TrimSpace(postcode) == "" {
		writeJSON(w, http.StatusBadRequest, requestBody("postcode is required"))
		return
	}

	addrs, err := s.bins.Addresses(r.Context(), postcode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]AddressResponse, len(addrs))
	for i, a := range addrs {
		resp[i] = AddressResponse{UPRN: a.UPRN, Address: a.Address, Postcode: a.Postcode}
	}
	writeJSON(w, http.StatusOK, resp)
}
