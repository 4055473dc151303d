// Package export serializes the generated calendar for downstream consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/starrtours/pricingcal/core/model"
)

// Header is the CSV column order consumers rely on.
var Header = []string{
	"Full Date", "Formatted Date", "Month", "Weekday", "Season",
	"Coach Pressure", "Trips Scheduled", "Avg Trip Complexity",
	"Suggested Band", "Reason",
}

// WriteJSON writes the calendar to w in JSON format.
func WriteJSON(w io.Writer, rows []model.CalendarRow) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}

// WriteCSV writes the calendar to w as delimited text with the standard
// header.
func WriteCSV(w io.Writer, rows []model.CalendarRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Date.Format("2006-01-02"),
			r.FormattedDate,
			r.Month,
			r.Weekday,
			string(r.Season),
			strconv.FormatFloat(r.CoachPressure, 'f', -1, 64),
			strconv.Itoa(r.TripsCount),
			strconv.FormatFloat(r.AvgComplexity, 'f', -1, 64),
			r.Band,
			r.Reason,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
