package handler

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/binday/backend/internal/domain"
)

// bindQuery reads the uprn, postcode and house_number query parameters shared
// by every collection endpoint. All three are optional here; the service
// decides whether the combination is usable.
func bindQuery(r *http.Request) (domain.Query, error) {
	var q domain.Query
	params := r.URL.Query()
	for _, p := range []struct {
		name string
		dest *string
	}{
		{"uprn", &q.UPRN},
		{"postcode", &q.Postcode},
		{"house_number", &q.HouseNumber},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, params, p.dest); err != nil {
			return domain.Query{}, fmt.Errorf("%w: invalid %s parameter: %w", domain.ErrInvalidRequest, p.name, err)
		}
	}
	return q, nil
}
