package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/service"
	"github.com/pkordes/binday/backend/internal/upstream"
)

const threeBins = `{
	"container1CollectionDetails": {"collectionDate": "2026-03-02T07:00:00", "containerDescription": "Paper"},
	"container2CollectionDetails": {"collectionDate": "2026-03-04T07:00:00", "containerDescription": "General Waste"},
	"container3CollectionDetails": {"collectionDate": "2026-03-16T07:00:00", "containerDescription": "Paper"}
}`

// collectionsAPI returns an API that serves smithStreet addresses and threeBins
// for any UPRN, recording the UPRN it was asked for.
func collectionsAPI(t *testing.T, gotUPRN *string) *mockAPI {
	return &mockAPI{
		addresses: func(context.Context, string) ([]upstream.AddressItem, error) {
			return smithStreet(), nil
		},
		wasteCollections: func(_ context.Context, uprn string) (upstream.WasteCollectionDates, error) {
			if gotUPRN != nil {
				*gotUPRN = uprn
			}
			return dates(t, threeBins), nil
		},
	}
}

func TestCollectionService_GetSchedule_ByUPRN(t *testing.T) {
	var asked string
	svc := service.NewCollectionService(collectionsAPI(t, &asked))

	got, err := svc.GetSchedule(context.Background(), domain.Query{UPRN: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "123456", asked)
	assert.Equal(t, "123456", got.UPRN)
	assert.Len(t, got.Collections, 3)
}

func TestCollectionService_GetSchedule_ByAddress(t *testing.T) {
	var asked string
	svc := service.NewCollectionService(collectionsAPI(t, &asked))

	got, err := svc.GetSchedule(context.Background(), domain.Query{Postcode: "SG6 1JF", HouseNumber: "1"})

	require.NoError(t, err)
	assert.Equal(t, "100", asked)
	assert.Equal(t, "100", got.UPRN, "the resolved UPRN is returned with the schedule")
}

func TestCollectionService_GetSchedule_InvalidIdentifier(t *testing.T) {
	svc := service.NewCollectionService(&mockAPI{
		wasteCollections: func(context.Context, string) (upstream.WasteCollectionDates, error) {
			t.Fatal("upstream must not be called with an invalid UPRN")
			return upstream.WasteCollectionDates{}, nil
		},
	})

	_, err := svc.GetSchedule(context.Background(), domain.Query{UPRN: "abc123"})

	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	assert.Contains(t, domain.Message(err), "abc123")
}

func TestCollectionService_GetSchedule_ResolvedNonNumericUPRN(t *testing.T) {
	svc := service.NewCollectionService(&mockAPI{
		addresses: func(context.Context, string) ([]upstream.AddressItem, error) {
			return []upstream.AddressItem{{UPRN: "X-1", FullAddress: "1 Odd Road"}}, nil
		},
	})

	_, err := svc.GetSchedule(context.Background(), domain.Query{Postcode: "SG6 1JF", HouseNumber: "1"})

	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestCollectionService_GetSchedule_MissingParams(t *testing.T) {
	svc := service.NewCollectionService(&mockAPI{})

	for name, q := range map[string]domain.Query{
		"nothing":       {},
		"postcode only": {Postcode: "SG6 1JF"},
		"house only":    {HouseNumber: "1"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GetSchedule(context.Background(), q)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestCollectionService_GetSchedule_AddressNotFound(t *testing.T) {
	svc := service.NewCollectionService(collectionsAPI(t, nil))

	_, err := svc.GetSchedule(context.Background(), domain.Query{Postcode: "SG6 1JF", HouseNumber: "99"})

	require.ErrorIs(t, err, domain.ErrAddressNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Contains(t, err.Error(), "SG6 1JF")
}

func TestCollectionService_GetSchedule_UpstreamUnavailable(t *testing.T) {
	cause := errors.New("i/o timeout")
	svc := service.NewCollectionService(&mockAPI{
		wasteCollections: func(context.Context, string) (upstream.WasteCollectionDates, error) {
			return upstream.WasteCollectionDates{}, cause
		},
	})

	_, err := svc.GetSchedule(context.Background(), domain.Query{UPRN: "111"})

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestCollectionService_GetNextCollection(t *testing.T) {
	now := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.Local)
	svc := service.NewCollectionService(collectionsAPI(t, nil), service.WithClock(func() time.Time { return now }))

	next, ok, err := svc.GetNextCollection(context.Background(), domain.Query{UPRN: "111"})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "General Waste", next.BinType)
	assert.Equal(t, 1, next.DaysUntil(now))
}

func TestCollectionService_GetNextCollection_AllPast(t *testing.T) {
	now := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
	svc := service.NewCollectionService(collectionsAPI(t, nil), service.WithClock(func() time.Time { return now }))

	_, ok, err := svc.GetNextCollection(context.Background(), domain.Query{UPRN: "111"})

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectionService_GetCollectionsByType(t *testing.T) {
	svc := service.NewCollectionService(collectionsAPI(t, nil))

	groups, err := svc.GetCollectionsByType(context.Background(), domain.Query{UPRN: "111"})

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Paper", groups[0].BinType)
	assert.Len(t, groups[0].Collections, 2)
	assert.Equal(t, "General Waste", groups[1].BinType)
}

func TestCollectionService_GetCollections_Error(t *testing.T) {
	svc := service.NewCollectionService(&mockAPI{})

	got, err := svc.GetCollections(context.Background(), domain.Query{})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Nil(t, got)
}
