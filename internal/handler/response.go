package handler

import (
	"time"

	"github.com/pkordes/binday/backend/internal/domain"
)

// CollectionResponse is one collection as rendered by the API.
type CollectionResponse struct {
	BinType                 string `json:"bin_type"`
	CollectionDate          string `json:"collection_date"`
	CollectionDateFormatted string `json:"collection_date_formatted"`
	DaysUntil               int    `json:"days_until"`
}

// CollectionsResponse is the body of GET /api/collections.
// Address is always null; it is kept for clients that read the key.
type CollectionsResponse struct {
	UPRN           string               `json:"uprn"`
	Address        *string              `json:"address"`
	Collections    []CollectionResponse `json:"collections"`
	NextCollection *CollectionResponse  `json:"next_collection"`
	LastUpdated    string               `json:"last_updated"`
}

// CollectionGroupResponse is one bin type and its dates.
type CollectionGroupResponse struct {
	BinType     string               `json:"bin_type"`
	Collections []CollectionResponse `json:"collections"`
}

// CollectionsByTypeResponse is the body of GET /api/collections/by-type.
type CollectionsByTypeResponse struct {
	UPRN        string                    `json:"uprn"`
	Groups      []CollectionGroupResponse `json:"groups"`
	LastUpdated string                    `json:"last_updated"`
}

// AddressResponse is one address returned by GET /api/addresses.
type AddressResponse struct {
	UPRN     string `json:"uprn"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
}

func collectionToResponse(c domain.Collection, now time.Time) CollectionResponse {
	return CollectionResponse{
		BinType:                 c.BinType,
		CollectionDate:          c.ISO(),
		CollectionDateFormatted: c.Formatted(),
		DaysUntil:               c.DaysUntil(now),
	}
}

func collectionsToResponse(cols []domain.Collection, now time.Time) []CollectionResponse {
	out := make([]CollectionResponse, len(cols))
	for i, c := range cols {
		out[i] = collectionToResponse(c, now)
	}
	return out
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
