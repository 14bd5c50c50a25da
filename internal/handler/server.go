// Package handler implements the HTTP handlers for the binday API.
// All handlers are methods on Server. Methods are split into topic files
// (health.go, collections.go, homeassistant.go, etc.) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/middleware"
)

// clearBodyLimit caps the body of POST /api/cache/clear, which takes none.
const clearBodyLimit = 1 << 10

// BinServicer defines the cached lookups the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without an upstream server or a cache.
type BinServicer interface {
	Addresses(ctx context.Context, postcode string) ([]domain.Address, error)
	Schedule(ctx context.Context, q domain.Query) (domain.Schedule, error)
	ClearCache()
}

// Server holds the dependencies shared by every API handler.
type Server struct {
	bins        BinServicer
	defaultUPRN string
	log         *slog.Logger
	now         func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces time.Now for days_until and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer constructs the Server with all its dependencies. log may be nil.
func NewServer(bins BinServicer, defaultUPRN string, log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		bins:        bins,
		defaultUPRN: defaultUPRN,
		log:         log,
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Routes returns the /api subtree. Mount it at "/api".
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/config", s.GetConfig)
	r.Get("/addresses", s.GetAddresses)

	r.Get("/collections", s.GetCollections)
	r.Get("/collections/by-type", s.GetCollectionsByType)
	r.Get("/collections/export", s.GetExport)
	r.Get("/next", s.GetNext)

	r.Get("/homeassistant", s.GetHomeAssistant)
	r.Get("/sensor/next", s.GetSensorNext)

	r.With(middleware.NewMaxBodySizeHandler(clearBodyLimit)).Post("/cache/clear", s.ClearCache)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("not_found", "not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return r
}
