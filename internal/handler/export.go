package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trackpad/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"itinerary_name", "itinerary_start_date", "itinerary_end_date",
	"day", "date", "start", "end",
	"attraction_name", "attraction_location", "visited", "tags",
}

// exportRow is one planned visit, flattened. Itineraries with nothing
// planned yield a single row with only the itinerary columns set.
type exportRow struct {
	ItineraryName      string              `json:"itinerary_name"`
	ItineraryStartDate openapi_types.Date  `json:"itinerary_start_date"`
	ItineraryEndDate   openapi_types.Date  `json:"itinerary_end_date"`
	Day                int                 `json:"day,omitempty"`
	Date               *openapi_types.Date `json:"date,omitempty"`
	Start              string              `json:"start,omitempty"`
	End                string              `json:"end,omitempty"`
	AttractionName     string              `json:"attraction_name,omitempty"`
	AttractionLocation string              `json:"attraction_location,omitempty"`
	Visited            bool                `json:"visited"`
	Tags               []string            `json:"tags"`
}

// GetExport handles GET /export.
// It returns every itinerary's schedule as a flat table, ignoring filters.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", "format should be csv or json")
		return
	}

	s.mu.Lock()
	rows := exportRows(s.model.Itineraries())
	s.mu.Unlock()

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func exportRows(its []domain.Itinerary) []exportRow {
	rows := make([]exportRow, 0, len(its))
	for _, it := range its {
		base := exportRow{
			ItineraryName:      it.Name.String(),
			ItineraryStartDate: openapi_types.Date{Time: it.StartDate.Time()},
			ItineraryEndDate:   openapi_types.Date{Time: it.EndDate().Time()},
			Tags:               []string{},
		}
		planned := false
		for d, visits := range it.Days() {
			date := openapi_types.Date{Time: it.StartDate.AddDays(d).Time()}
			for _, v := range visits {
				row := base
				row.Day = d + 1
				row.Date = &date
				row.Start = v.Start.String()
				row.End = v.End.String()
				row.AttractionName = v.Attraction.Name.String()
				row.AttractionLocation = v.Attraction.Location.String()
				row.Visited = v.Attraction.Visited
				row.Tags = v.Attraction.Tags.Names()
				rows = append(rows, row)
				planned = true
			}
		}
		if !planned {
			rows = append(rows, base)
		}
	}
	return rows
}

// writeCSV encodes rows as CSV. Tags within a row are pipe-separated ("|")
// to keep each visit on a single line.
func writeCSV(w http.ResponseWriter, rows []exportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write(exportRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trackpad-export.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func exportRowToCSVRecord(r exportRow) []string {
	day, date, visited := "", "", ""
	if r.Day > 0 {
		day = strconv.Itoa(r.Day)
		visited = strconv.FormatBool(r.Visited)
	}
	if r.Date != nil {
		date = r.Date.Time.Format(openapi_types.DateFormat)
	}
	return []string{
		r.ItineraryName,
		r.ItineraryStartDate.Time.Format(openapi_types.DateFormat),
		r.ItineraryEndDate.Time.Format(openapi_types.DateFormat),
		day,
		date,
		r.Start,
		r.End,
		r.AttractionName,
		r.AttractionLocation,
		visited,
		strings.Join(r.Tags, "|"),
	}
}
