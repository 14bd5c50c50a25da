package domain

import "time"

// CollectionLayout is the upstream date-time format: local civil time with no
// offset and no fractional seconds.
const CollectionLayout = "2006-01-02T15:04:05"

// FormattedLayout renders a collection date for people, e.g. "Tuesday, 03 March 2026".
const FormattedLayout = "Monday, 02 January 2006"

// Collection is one scheduled pickup of one waste stream at one property.
// Date carries no meaningful zone; it is parsed in time.Local.
type Collection struct {
	BinType string
	Date    time.Time
}

// ISO returns the collection date in the upstream layout.
func (c Collection) ISO() string {
	return c.Date.Format(CollectionLayout)
}

// Formatted returns the long human-readable date.
func (c Collection) Formatted() string {
	return c.Date.Format(FormattedLayout)
}

// DaysUntil returns the number of calendar days between now's date and the
// collection's date. Times of day are ignored; past dates are negative.
func (c Collection) DaysUntil(now time.Time) int {
	y, m, d := c.Date.Date()
	collected := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = now.In(c.Date.Location()).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(collected.Sub(today).Hours() / 24)
}

// Schedule is the resolved UPRN with its date-sorted collections.
// It is the unit the response cache stores for a collections query.
type Schedule struct {
	UPRN        string
	Collections []Collection
}

// CollectionGroup is every collection of a single bin type, in date order.
type CollectionGroup struct {
	BinType     string
	Collections []Collection
}

// NextCollection returns the first collection on or after now.
// collections must already be sorted by date.
func NextCollection(collections []Collection, now time.Time) (Collection, bool) {
	for _, c := range collections {
		if !c.Date.Before(now) {
			return c, true
		}
	}
	return Collection{}, false
}

// GroupByType groups collections by bin type. Groups appear in the order their
// type is first seen, and each group keeps the input's relative order.
func GroupByType(collections []Collection) []CollectionGroup {
	groups := []CollectionGroup{}
	index := make(map[string]int)
	for _, c := range collections {
		i, ok := index[c.BinType]
		if !ok {
			i = len(groups)
			index[c.BinType] = i
			groups = append(groups, CollectionGroup{BinType: c.BinType})
		}
		groups[i].Collections = append(groups[i].Collections, c)
	}
	return groups
}
