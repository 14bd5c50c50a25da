package domain

import "strings"

// Query addresses a collection schedule either by UPRN or by postcode and
// house number. UPRN wins when both forms are present.
type Query struct {
	UPRN        string
	Postcode    string
	HouseNumber string
}

// ByAddress reports whether the query must be resolved through an address lookup.
func (q Query) ByAddress() bool {
	return q.UPRN == ""
}

// Key returns the cache key for the query. Queries that resolve the same way
// produce the same key: postcodes are normalised and house numbers are
// trimmed and lowercased exactly as the address matcher treats them.
func (q Query) Key() string {
	if !q.ByAddress() {
		return "collections:uprn:" + q.UPRN
	}
	return "collections:address:" + NormalizePostcode(q.Postcode) + ":" + NormalizeHouseNumber(q.HouseNumber)
}

// AddressesKey returns the cache key for a postcode lookup.
func AddressesKey(postcode string) string {
	return "addresses:" + NormalizePostcode(postcode)
}

// NormalizeHouseNumber trims and lowercases a house number or name.
func NormalizeHouseNumber(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
