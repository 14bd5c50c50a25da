package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/handler"
)

// mockBins is a test double for handler.BinServicer.
// Set only the method fields your test needs.
type mockBins struct {
	addresses  func(ctx context.Context, postcode string) ([]domain.Address, error)
	schedule   func(ctx context.Context, q domain.Query) (domain.Schedule, error)
	clearCache func()
}

func (m *mockBins) Addresses(ctx context.Context, postcode string) ([]domain.Address, error) {
	return m.addresses(ctx, postcode)
}
func (m *mockBins) Schedule(ctx context.Context, q domain.Query) (domain.Schedule, error) {
	return m.schedule(ctx, q)
}
func (m *mockBins) ClearCache() {
	m.clearCache()
}

// compile-time check: mockBins must satisfy handler.BinServicer.
var _ handler.BinServicer = (*mockBins)(nil)

// ---- helpers ---------------------------------------------------------------

// fixedNow is the clock every handler test runs at: Sunday 1 March 2026, 10:00.
var fixedNow = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.Local)

// newHTTPHandler wires a Server with the given mock under /api, mirroring main.go.
func newHTTPHandler(svc handler.BinServicer) http.Handler {
	srv := handler.NewServer(svc, "010070035296", nil, handler.WithClock(func() time.Time { return fixedNow }))
	r := chi.NewRouter()
	r.Mount("/api", srv.Routes())
	r.Get("/openapi.yaml", handler.OpenAPI)
	return r
}

// day returns fixedNow's date shifted by n days, at the given hour.
func day(n, hour int) time.Time {
	return time.Date(2026, time.March, 1+n, hour, 0, 0, 0, time.Local)
}

// scheduleFixture has one past collection and two upcoming ones.
func scheduleFixture() domain.Schedule {
	return domain.Schedule{
		UPRN: "010070035296",
		Collections: []domain.Collection{
			{BinType: "Paper", Date: day(-1, 7)},
			{BinType: "General Waste", Date: day(2, 0)},
			{BinType: "Paper", Date: day(13, 0)},
		},
	}
}

func staticSchedule(sched domain.Schedule) *mockBins {
	return &mockBins{
		schedule: func(context.Context, domain.Query) (domain.Schedule, error) {
			return sched, nil
		},
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
