package domain

import "strings"

// NormalizePostcode uppercases a postcode, trims it and removes every space.
// UK postcode syntax is not validated: malformed input is passed through and
// simply matches nothing upstream.
func NormalizePostcode(raw string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), " ", "")
}
