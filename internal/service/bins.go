package service

import (
	"context"
	"time"

	"github.com/pkordes/binday/backend/internal/cache"
	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/metrics"
)

// ScheduleSource is the uncached lookup Bins sits in front of.
// *CollectionService satisfies it.
type ScheduleSource interface {
	LookupAddresses(ctx context.Context, postcode string) ([]domain.Address, error)
	GetSchedule(ctx context.Context, q domain.Query) (domain.Schedule, error)
}

// compile-time check: *CollectionService must satisfy ScheduleSource.
var _ ScheduleSource = (*CollectionService)(nil)

// Bins is the process-wide service state shared by every handler: the
// collection source and the response caches in front of it. Build it once
// at startup and Close it at shutdown.
//
// Only successful results are cached. Cached slices are shared between
// callers and must be treated as read-only.
type Bins struct {
	source    ScheduleSource
	addresses *cache.Cache[[]domain.Address]
	schedules *cache.Cache[domain.Schedule]
	metrics   *metrics.Metrics
}

// NewBins constructs Bins whose cached entries live for ttl. m may be nil.
func NewBins(source ScheduleSource, ttl time.Duration, m *metrics.Metrics, opts ...cache.Option) *Bins {
	return &Bins{
		source:    source,
		addresses: cache.New[[]domain.Address](ttl, opts...),
		schedules: cache.New[domain.Schedule](ttl, opts...),
		metrics:   m,
	}
}

// Addresses returns the addresses registered at postcode, cached per
// normalised postcode.
func (b *Bins) Addresses(ctx context.Context, postcode string) ([]domain.Address, error) {
	key := domain.AddressesKey(postcode)
	if addrs, ok := b.addresses.Get(key); ok {
		b.metrics.CacheHit("addresses")
		return addrs, nil
	}
	b.metrics.CacheMiss("addresses")

	addrs, err := b.source.LookupAddresses(ctx, postcode)
	if err != nil {
		return nil, err
	}
	b.addresses.Set(key, addrs)
	return addrs, nil
}

// Schedule returns the resolved UPRN and collections for q, cached per query key.
func (b *Bins) Schedule(ctx context.Context, q domain.Query) (domain.Schedule, error) {
	key := q.Key()
	if sched, ok := b.schedules.Get(key); ok {
		b.metrics.CacheHit("collections")
		return sched, nil
	}
	b.metrics.CacheMiss("collections")

	sched, err := b.source.GetSchedule(ctx, q)
	if err != nil {
		return domain.Schedule{}, err
	}
	b.schedules.Set(key, sched)
	return sched, nil
}

// ClearCache drops every cached address list and schedule.
func (b *Bins) ClearCache() {
	b.addresses.Clear()
	b.schedules.Clear()
}

// Close releases the process-wide state. It clears the caches.
func (b *Bins) Close() {
	b.ClearCache()
}
