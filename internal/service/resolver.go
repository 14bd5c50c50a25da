// Package service contains the business logic for the binday API.
// Services validate inputs, resolve addresses, parse council payloads and
// orchestrate upstream calls. No HTTP lives here: services depend on the
// upstream.API interface, not on the HTTP client.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/upstream"
)

// AddressResolver turns postcodes into addresses and addresses into UPRNs.
type AddressResolver struct {
	api upstream.API
}

// NewAddressResolver constructs an AddressResolver backed by the council API.
func NewAddressResolver(api upstream.API) *AddressResolver {
	return &AddressResolver{api: api}
}

// LookupAddresses returns the addresses registered at postcode in the order the
// council returns them. The display text prefers the full address and falls
// back to the first address line; a missing postcode falls back to the
// normalised input.
func (r *AddressResolver) LookupAddresses(ctx context.Context, postcode string) ([]domain.Address, error) {
	postcode = domain.NormalizePostcode(postcode)

	items, err := r.api.Addresses(ctx, postcode)
	if err != nil {
		return nil, asUpstream("lookup addresses", err)
	}

	out := make([]domain.Address, 0, len(items))
	for _, it := range items {
		addr := domain.Address{
			UPRN:     string(it.UPRN),
			Address:  it.FullAddress,
			Postcode: it.Postcode,
		}
		if addr.Address == "" {
			addr.Address = it.AddressLine1
		}
		if addr.Postcode == "" {
			addr.Postcode = postcode
		}
		out = append(out, addr)
	}
	return out, nil
}

// FindUPRN returns the UPRN of the first address whose lowercased text starts
// with the house number followed by a space or a comma. found is false when
// nothing matches; that is not an error.
//
// The rule is a plain prefix test: "1" never matches "10 Smith Street", but a
// house name is only matched if the address starts with it.
func (r *AddressResolver) FindUPRN(ctx context.Context, postcode, houseNumber string) (uprn string, found bool, err error) {
	addrs, err := r.LookupAddresses(ctx, postcode)
	if err != nil {
		return "", false, err
	}

	num := domain.NormalizeHouseNumber(houseNumber)
	for _, a := range addrs {
		text := strings.ToLower(a.Address)
		if strings.HasPrefix(text, num+" ") || strings.HasPrefix(text, num+",") {
			return a.UPRN, true, nil
		}
	}
	return "", false, nil
}

// asUpstream makes sure err carries domain.ErrUpstreamUnavailable.
func asUpstream(op string, err error) error {
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamUnavailable, op, err)
}
