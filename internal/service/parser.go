package service

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/pkordes/binday/backend/internal/domain"
	"github.com/pkordes/binday/backend/internal/upstream"
)

// unknownBinType names a container the council did not describe.
const unknownBinType = "Unknown"

// excludedBinTypes are dropped from every schedule, compared case-insensitively.
var excludedBinTypes = []string{"food caddy"}

// ParseCollections turns the council's container slots into collections
// sorted by date. Slots are read in index order 1 to 8 and the sort is
// stable, so collections on the same date keep slot order.
//
// A slot is skipped when it is absent, malformed, has an empty or unparsable
// date, or describes an excluded bin type. A skipped slot never fails the
// parse; an empty result is valid.
func ParseCollections(dates upstream.WasteCollectionDates) []domain.Collection {
	out := []domain.Collection{}
	for _, slot := range dates.Slots() {
		if c, ok := parseSlot(slot); ok {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Collection) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

func parseSlot(slot upstream.Slot) (domain.Collection, bool) {
	if !slot.Present() {
		return domain.Collection{}, false
	}

	var details upstream.ContainerDetails
	if err := json.Unmarshal(slot.Details, &details); err != nil {
		return domain.Collection{}, false
	}
	if details.CollectionDate == nil || *details.CollectionDate == "" {
		return domain.Collection{}, false
	}

	binType := unknownBinType
	if details.ContainerDescription != nil && strings.TrimSpace(*details.ContainerDescription) != "" {
		binType = *details.ContainerDescription
	}
	if isExcluded(binType) {
		return domain.Collection{}, false
	}

	date, ok := parseCollectionDate(*details.CollectionDate)
	if !ok {
		return domain.Collection{}, false
	}
	return domain.Collection{BinType: binType, Date: date}, true
}

// parseCollectionDate accepts exactly YYYY-MM-DDTHH:MM:SS. time.Parse would
// also accept trailing fractional seconds, so the length is checked first.
func parseCollectionDate(raw string) (time.Time, bool) {
	if len(raw) != len(domain.CollectionLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(domain.CollectionLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isExcluded(binType string) bool {
	for _, ex := range excludedBinTypes {
		if strings.EqualFold(binType, ex) {
			return true
		}
	}
	return false
}
