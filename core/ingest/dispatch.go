package ingest

import (
	"strings"
	"time"

	"github.com/starrtours/pricingcal/core/model"
	"github.com/starrtours/pricingcal/core/table"
)

// Dispatch report column names. Other columns are ignored.
const (
	ColBookingID   = "Booking ID"
	ColDeparture   = "First Departure"
	ColRoute       = "Route Description"
	ColDestination = "Destination"
	ColGroupName   = "Group Name"
)

// Complexity keyword sets. The urban set is checked first; a trip whose text
// matches both sets scores urban.
var (
	urbanKeywords   = []string{"nyc", "manhattan", "dc", "downtown"}
	leisureKeywords = []string{"hershey", "dorney", "park", "amusement"}
)

// Accepted "First Departure" layouts, tried in order. Rows that match none
// are dropped, not errored.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Dropped counts the dispatch rows excluded during normalization. Exclusions
// are expected operating noise, not failures; they only surface in logs and
// run metrics.
type Dropped struct {
	NoBookingID int
	BadDate     int
}

// NormalizeDispatch filters the dispatch report down to one Trip per valid
// row. Rows without a booking ID or without a parseable departure are
// excluded silently. A missing required column fails the whole run.
func NormalizeDispatch(t *table.Table) ([]model.Trip, Dropped, error) {
	var dropped Dropped

	cols := make(map[string]int, 5)
	for _, name := range []string{ColBookingID, ColDeparture, ColRoute, ColDestination, ColGroupName} {
		i, err := t.Column(name)
		if err != nil {
			return nil, dropped, err
		}
		cols[name] = i
	}

	trips := make([]model.Trip, 0, len(t.Rows))
	for _, row := range t.Rows {
		if strings.TrimSpace(table.Cell(row, cols[ColBookingID])) == "" {
			dropped.NoBookingID++
			continue
		}
		ts, ok := parseDeparture(table.Cell(row, cols[ColDeparture]))
		if !ok {
			dropped.BadDate++
			continue
		}
		trips = append(trips, model.Trip{
			Date: model.Day(ts),
			Complexity: inferComplexity(
				table.Cell(row, cols[ColRoute]),
				table.Cell(row, cols[ColDestination]),
				table.Cell(row, cols[ColGroupName]),
			),
		})
	}
	return trips, dropped, nil
}

func parseDeparture(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range departureLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// inferComplexity scores a trip from its descriptive text: urban keywords
// score 1, leisure keywords -1, anything else 0. Matching is case-insensitive
// substring containment and the urban rule wins when both sets match.
func inferComplexity(route, destination, group string) int {
	text := strings.ToLower(route + " " + destination + " " + group)
	for _, kw := range urbanKeywords {
		if strings.Contains(text, kw) {
			return 1
		}
	}
	for _, kw := range leisureKeywords {
		if strings.Contains(text, kw) {
			return -1
		}
	}
	return 0
}
