package handler

import (
	"net/http"

	"github.com/pkordes/binday/backend/internal/domain"
)

// HomeAssistantSensor is the body of GET /api/homeassistant, shaped for
// Home Assistant's REST sensor platform:
//
//	sensor:
//	  - platform: rest
//	    resource: "http://localhost:8000/api/homeassistant?uprn=YOUR_UPRN"
//	    value_template: "{{ value_json.state }}"
//	    json_attributes: [days_until, next_date, collections]
type HomeAssistantSensor struct {
	State       string               `json:"state"`
	DaysUntil   int                  `json:"days_until"`
	NextDate    string               `json:"next_date"`
	Collections []CollectionResponse `json:"collections"`
}

// NextCollectionSensor is the body of GET /api/sensor/next.
type NextCollectionSensor struct {
	State       string `json:"state"`
	Days        int    `json:"days"`
	Date        string `json:"date"`
	LastUpdated string `json:"last_updated"`
}

// GetHomeAssistant handles GET /api/homeassistant.
func (s *Server) GetHomeAssistant(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.schedule(w, r)
	if !ok {
		return
	}

	now := s.now()
	next, found := domain.NextCollection(sched.Collections, now)
	if !found {
		writeJSON(w, http.StatusOK, HomeAssistantSensor{
			State:       "No upcoming collections",
			DaysUntil:   -1,
			NextDate:    "N/A",
			Collections: []CollectionResponse{},
		})
		return
	}
	writeJSON(w, http.StatusOK, HomeAssistantSensor{
		State:       next.BinType,
		DaysUntil:   next.DaysUntil(now),
		NextDate:    next.Formatted(),
		Collections: collectionsToResponse(sched.Collections, now),
	})
}

// GetSensorNext handles GET /api/sensor/next.
func (s *Server) GetSensorNext(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.schedule(w, r)
	if !ok {
		return
	}

	now := s.now()
	resp := NextCollectionSensor{State: "None", Days: -1, Date: "N/A", LastUpdated: timestamp(now)}
	if next, found := domain.NextCollection(sched.Collections, now); found {
		resp.State = next.BinType
		resp.Days = next.DaysUntil(now)
		resp.Date = next.Formatted()
	}
	writeJSON(w, http.StatusOK, resp)
}
