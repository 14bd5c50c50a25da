package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/upstream"
)

// uprnPattern is the only identifier shape sent to the collections endpoint.
var uprnPattern = regexp.MustCompile(`^\d+$`)

// CollectionService answers collection queries given either a UPRN or a
// postcode and house number.
type CollectionService struct {
	api      upstream.API
	resolver *AddressResolver
	now      func() time.Time
}

// Option configures a CollectionService.
type Option func(*CollectionService)

// WithClock replaces time.Now when deciding which collections are upcoming.
func WithClock(now func() time.Time) Option {
	return func(s *CollectionService) { s.now = now }
}

// NewCollectionService constructs a CollectionService backed by the council API.
func NewCollectionService(api upstream.API, opts ...Option) *CollectionService {
	s := &CollectionService{
		api:      api,
		resolver: NewAddressResolver(api),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// LookupAddresses returns the addresses registered at postcode.
func (s *CollectionService) LookupAddresses(ctx context.Context, postcode string) ([]domain.Address, error) {
	return s.resolver.LookupAddresses(ctx, postcode)
}

// FindUPRN resolves a postcode and house number to a UPRN.
func (s *CollectionService) FindUPRN(ctx context.Context, postcode, houseNumber string) (string, bool, error) {
	return s.resolver.FindUPRN(ctx, postcode, houseNumber)
}

// GetSchedule resolves the query to a UPRN, validates it, fetches the
// collections and parses them.
func (s *CollectionService) GetSchedule(ctx context.Context, q domain.Query) (domain.Schedule, error) {
	uprn := q.UPRN
	if q.ByAddress() {
		if q.Postcode == "" || q.HouseNumber == "" {
			return domain.Schedule{}, fmt.Errorf("%w: either uprn or both postcode and house_number are required", domain.ErrInvalidRequest)
		}
		found, ok, err := s.resolver.FindUPRN(ctx, q.Postcode, q.HouseNumber)
		if err != nil {
			return domain.Schedule{}, err
		}
		if !ok {
			return domain.Schedule{}, fmt.Errorf("%w: could not find address: %s, %s", domain.ErrAddressNotFound, q.HouseNumber, q.Postcode)
		}
		uprn = found
	}

	if !uprnPattern.MatchString(uprn) {
		return domain.Schedule{}, fmt.Errorf("%w: invalid UPRN format: %s", domain.ErrInvalidIdentifier, uprn)
	}

	dates, err := s.api.WasteCollections(ctx, uprn)
	if err != nil {
		return domain.Schedule{}, asUpstream("fetch collections", err)
	}

	return domain.Schedule{UPRN: uprn, Collections: ParseCollections(dates)}, nil
}

// GetCollections returns the date-sorted collections for the query.
func (s *CollectionService) GetCollections(ctx context.Context, q domain.Query) ([]domain.Collection, error) {
	sched, err := s.GetSchedule(ctx, q)
	if err != nil {
		return nil, err
	}
	return sched.Collections, nil
}

// GetNextCollection returns the first collection at or after the current
// time. ok is false when every collection is in the past or there are none.
func (s *CollectionService) GetNextCollection(ctx context.Context, q domain.Query) (next domain.Collection, ok bool, err error) {
	collections, err := s.GetCollections(ctx, q)
	if err != nil {
		return domain.Collection{}, false, err
	}
	next, ok = domain.NextCollection(collections, s.now())
	return next, ok, nil
}

// GetCollectionsByType returns the collections grouped by bin type, groups in
// order of first appearance.
func (s *CollectionService) GetCollectionsByType(ctx context.Context, q domain.Query) ([]domain.CollectionGroup, error) {
	collections, err := s.GetCollections(ctx, q)
	if err != nil {
		return nil, err
	}
	return domain.GroupByType(collections), nil
}
