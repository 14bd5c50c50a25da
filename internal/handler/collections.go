package handler

import (
	"net/http"

	"github.com/pkordes/binday/backend/internal/domain"
)

// schedule binds the shared query parameters and fetches the schedule.
// On failure the error response has already been written and ok is false.
func (s *Server) schedule(w http.ResponseWriter, r *http.Request) (sched domain.Schedule, ok bool) {
	q, err := bindQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return domain.Schedule{}, false
	}
	sched, err = s.bins.Schedule(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return domain.Schedule{}, false
	}
	return sched, true
}

// GetCollections handles GET /api/collections.
// Provide either uprn, or postcode and house_number.
func (s *Server) GetCollections(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.schedule(w, r)
	if !ok {
		return
	}

	now := s.now()
	resp := CollectionsResponse{
		UPRN:        sched.UPRN,
		Collections: collectionsToResponse(sched.Collections, now),
		LastUpdated: timestamp(now),
	}
	if next, found := domain.NextCollection(sched.Collections, now); found {
		n := collectionToResponse(next, now)
		resp.NextCollection = &n
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCollectionsByType handles GET /api/collections/by-type.
func (s *Server) GetCollectionsByType(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.schedule(w, r)
	if !ok {
		return
	}

	now := s.now()
	groups := domain.GroupByType(sched.Collections)
	resp := CollectionsByTypeResponse{
		UPRN:        sched.UPRN,
		Groups:      make([]CollectionGroupResponse, len(groups)),
		LastUpdated: timestamp(now),
	}
	for i, g := range groups {
		resp.Groups[i] = CollectionGroupResponse{
			BinType:     g.BinType,
			Collections: collectionsToResponse(g.Collections, now),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetNext handles GET /api/next. It returns 404 when nothing is upcoming.
func (s *Server) GetNext(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.schedule(w, r)
	if !ok {
		return
	}

	now := s.now()
	next, found := domain.NextCollection(sched.Collections, now)
	if !found {
		writeJSON(w, http.StatusNotFound, errorBody("no_upcoming_collections", "no upcoming collections found"))
		return
	}
	writeJSON(w, http.StatusOK, collectionToResponse(next, now))
}
