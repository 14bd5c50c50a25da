package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AddressesResponse is the body of GET /addresses?postcode=.
type AddressesResponse struct {
	Addresses []AddressItem `json:"addresses"`
}

// AddressItem is one element of the address lookup. Every field is optional.
type AddressItem struct {
	UPRN         UPRN   `json:"uprn"`
	FullAddress  string `json:"fullAddress"`
	AddressLine1 string `json:"addressLine1"`
	Postcode     string `json:"postcode"`
}

// UPRN decodes a property reference sent either as a JSON string or a JSON number.
type UPRN string

// UnmarshalJSON accepts "010070035296", 10070035296 and null.
func (u *UPRN) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*u = UPRN(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("uprn: %w", err)
	}
	*u = UPRN(n.String())
	return nil
}

// WasteCollectionsResponse is the body of GET /wastecollections/{uprn}.
type WasteCollectionsResponse struct {
	WasteCollectionDates WasteCollectionDates `json:"wasteCollectionDates"`
}

// SlotCount is the number of container slots the council payload can carry.
const SlotCount = 8

// WasteCollectionDates holds the eight independent container slots. Each slot
// is kept raw so that one malformed container cannot fail the whole decode;
// the parser decodes slots one at a time.
type WasteCollectionDates struct {
	Container1 json.RawMessage `json:"container1CollectionDetails"`
	Container2 json.RawMessage `json:"container2CollectionDetails"`
	Container3 json.RawMessage `json:"container3CollectionDetails"`
	Container4 json.RawMessage `json:"container4CollectionDetails"`
	Container5 json.RawMessage `json:"container5CollectionDetails"`
	Container6 json.RawMessage `json:"container6CollectionDetails"`
	Container7 json.RawMessage `json:"container7CollectionDetails"`
	Container8 json.RawMessage `json:"container8CollectionDetails"`
}

// Slot is one container position. Details is empty or the JSON literal null
// when the council omitted the container.
type Slot struct {
	Index   int
	Details json.RawMessage
}

// Present reports whether the slot carries a container object.
func (s Slot) Present() bool {
	return len(s.Details) > 0 && !bytes.Equal(s.Details, []byte("null"))
}

// Slots returns the container slots in ascending index order, 1 through 8.
func (d WasteCollectionDates) Slots() [SlotCount]Slot {
	return [SlotCount]Slot{
		{Index: 1, Details: d.Container1},
		{Index: 2, Details: d.Container2},
		{Index: 3, Details: d.Container3},
		{Index: 4, Details: d.Container4},
		{Index: 5, Details: d.Container5},
		{Index: 6, Details: d.Container6},
		{Index: 7, Details: d.Container7},
		{Index: 8, Details: d.Container8},
	}
}

// ContainerDetails is the content of a single slot. Pointers distinguish an
// absent field from an empty one.
type ContainerDetails struct {
	CollectionDate       *string `json:"collectionDate"`
	ContainerDescription *string `json:"containerDescription"`
}
