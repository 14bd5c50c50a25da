package domain

import "time"

// ExportRow is a single row in a schedule export: one row per collection,
// with the property identifier repeated on every row.
type ExportRow struct {
	UPRN      string
	BinType   string
	Date      time.Time
	DaysUntil int
}

// ExportRows flattens a schedule into export rows, preserving date order.
func ExportRows(s Schedule, now time.Time) []ExportRow {
	rows := make([]ExportRow, len(s.Collections))
	for i, c := range s.Collections {
		rows[i] = ExportRow{
			UPRN:      s.UPRN,
			BinType:   c.BinType,
			Date:      c.Date,
			DaysUntil: c.DaysUntil(now),
		}
	}
	return rows
}
