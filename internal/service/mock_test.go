package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/upstream"
)

// mockAPI is a hand-written test double for upstream.API.
// Each method is a function field: set only the ones your test needs.
type mockAPI struct {
	addresses        func(ctx context.Context, postcode string) ([]upstream.AddressItem, error)
	wasteCollections func(ctx context.Context, uprn string) (upstream.WasteCollectionDates, error)
}

func (m *mockAPI) Addresses(ctx context.Context, postcode string) ([]upstream.AddressItem, error) {
	return m.addresses(ctx, postcode)
}
func (m *mockAPI) WasteCollections(ctx context.Context, uprn string) (upstream.WasteCollectionDates, error) {
	return m.wasteCollections(ctx, uprn)
}

// compile-time check: mockAPI must satisfy upstream.API.
var _ upstream.API = (*mockAPI)(nil)

// ---- helpers ---------------------------------------------------------------

// smithStreet is the address list used by the resolver tests.
func smithStreet() []upstream.AddressItem {
	return []upstream.AddressItem{
		{UPRN: "100", FullAddress: "1 Smith Street, Town"},
		{UPRN: "1000", FullAddress: "10 Smith Street, Town"},
	}
}

// dates decodes a wasteCollectionDates JSON object the way the client would.
func dates(t *testing.T, raw string) upstream.WasteCollectionDates {
	t.Helper()
	var d upstream.WasteCollectionDates
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

// upstreamDown is the error the HTTP client reports when the council API fails.
func upstreamDown() error {
	return fmt.Errorf("%w: lookup addresses: connection refused", domain.ErrUpstreamUnavailable)
}
