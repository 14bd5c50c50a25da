package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/binday/backend/internal/domain"
)

func TestQuery_Key_EquivalentAddressQueriesMatch(t *testing.T) {
	a := domain.Query{Postcode: "sg6 1jf", HouseNumber: " 1A "}
	b := domain.Query{Postcode: "SG61JF", HouseNumber: "1a"}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "collections:address:SG61JF:1a", a.Key())
}

func TestQuery_Key_UPRNTakesPrecedence(t *testing.T) {
	q := domain.Query{UPRN: "111", Postcode: "SG6 1JF", HouseNumber: "1"}

	assert.False(t, q.ByAddress())
	assert.Equal(t, "collections:uprn:111", q.Key())
}

func TestQuery_Key_UPRNAndAddressNeverCollide(t *testing.T) {
	byUPRN := domain.Query{UPRN: "111"}
	byAddress := domain.Query{Postcode: "uprn", HouseNumber: "111"}

	assert.NotEqual(t, byUPRN.Key(), byAddress.Key())
}

func TestAddressesKey(t *testing.T) {
	assert.Equal(t, domain.AddressesKey(" sg6 1jf"), domain.AddressesKey("SG61JF"))
	assert.Equal(t, "addresses:SG61JF", domain.AddressesKey("SG6 1JF"))
}
