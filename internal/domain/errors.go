package domain

import (
	"errors"
	"strings"
)

// ErrInvalidRequest is returned when a query carries neither a UPRN nor the
// full postcode + house number pair.
// Handlers should map this to HTTP 400.
var ErrInvalidRequest = errors.New("invalid request")

// ErrInvalidIdentifier is returned when a UPRN is not made of digits only.
// Handlers should map this to HTTP 400.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrAddressNotFound is returned when no address for the postcode matches
// the requested house number.
// Handlers should map this to HTTP 404.
var ErrAddressNotFound = errors.New("address not found")

// ErrUpstreamUnavailable is returned when the council API cannot be reached,
// answers with a non-success status, or returns a body that cannot be decoded.
// The underlying cause is wrapped alongside it.
// Handlers should map this to HTTP 502.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// kinds pairs each sentinel with the machine-readable code used in API error bodies.
var kinds = []struct {
	err  error
	code string
}{
	{ErrInvalidRequest, "invalid_request"},
	{ErrInvalidIdentifier, "invalid_identifier"},
	{ErrAddressNotFound, "address_not_found"},
	{ErrUpstreamUnavailable, "upstream_unavailable"},
}

// Kind returns the error code for err, or "internal" when err wraps none of
// the domain sentinels.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return "internal"
}

// Message extracts the human-readable part of a wrapped sentinel error.
// e.g. "address not found: could not find address: 1, SG61JF" → "could not find address: 1, SG61JF"
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, k := range kinds {
		if prefix := k.err.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return msg[len(prefix):]
		}
	}
	return msg
}
