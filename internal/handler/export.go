// export.go implements GET /api/collections/export.
// Returns the schedule as a flat table or a calendar file.
// Supports ?format=csv, ?format=ics or the default JSON.
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/binday/backend/internal/domain"
)

// ExportFormat selects the body of an export response.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportICS  ExportFormat = "ics"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"uprn", "bin_type", "collection_date", "collection_date_formatted", "days_until"}

// icsProductID identifies this service in generated calendars.
const icsProductID = "-//binday//North Herts Bin Collections//EN"

// ExportRow is one row of the JSON export.
type ExportRow struct {
	UPRN                    string `json:"uprn"`
	BinType                 string `json:"bin_type"`
	CollectionDate          string `json:"collection_date"`
	CollectionDateFormatted string `json:"collection_date_formatted"`
	DaysUntil               int    `json:"days_until"`
}

// GetExport handles GET /api/collections/export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := ExportJSON
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid format parameter"))
		return
	}
	switch format {
	case ExportJSON, ExportCSV, ExportICS:
	default:
		writeJSON(w, http.StatusBadRequest, requestBody("format must be one of json, csv, ics"))
		return
	}

	sched, ok := s.schedule(w, r)
	if !ok {
		return
	}
	now := s.now()
	rows := domain.ExportRows(sched, now)

	filename := "bins_" + sched.UPRN + "." + string(format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	switch format {
	case ExportCSV:
		writeBody(w, "text/csv; charset=utf-8", buildCSV(rows))
	case ExportICS:
		writeBody(w, "text/calendar; charset=utf-8", buildICS(sched.UPRN, rows, now))
	default:
		writeJSON(w, http.StatusOK, buildJSONRows(rows))
	}
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// buildJSONRows converts domain rows to the JSON row type.
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		c := domain.Collection{BinType: r.BinType, Date: r.Date}
		out = append(out, ExportRow{
			UPRN:                    r.UPRN,
			BinType:                 r.BinType,
			CollectionDate:          c.ISO(),
			CollectionDateFormatted: c.Formatted(),
			DaysUntil:               r.DaysUntil,
		})
	}
	return out
}

// buildCSV encodes domain rows as CSV with a header row.
func buildCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		c := domain.Collection{BinType: r.BinType, Date: r.Date}
		//nolint:errcheck
		w.Write([]string{r.UPRN, r.BinType, c.ISO(), c.Formatted(), strconv.Itoa(r.DaysUntil)})
	}
	w.Flush()
	return buf.Bytes()
}

// buildICS renders one all-day VEVENT per collection. Lines end in CRLF as
// RFC 5545 requires.
func buildICS(uprn string, rows []domain.ExportRow, now time.Time) []byte {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\r\n", args...)
	}

	stamp := now.UTC().Format("20060102T150405Z")
	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:Bin collections %s", uprn)
	for _, r := range rows {
		day := r.Date.Format("20060102")
		line("BEGIN:VEVENT")
		line("UID:%s-%s-%s@binday", day, icsSlug(r.BinType), uprn)
		line("DTSTAMP:%s", stamp)
		line("DTSTART;VALUE=DATE:%s", day)
		line("DTEND;VALUE=DATE:%s", r.Date.AddDate(0, 0, 1).Format("20060102"))
		line("SUMMARY:%s", icsEscape(r.BinType))
		line("END:VEVENT")
	}
	line("END:VCALENDAR")
	return []byte(b.String())
}

// icsEscape escapes TEXT values per RFC 5545 section 3.3.11.
func icsEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`).Replace(s)
}

func icsSlug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
