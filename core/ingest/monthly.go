// Package ingest turns the two raw source tables into typed pipeline inputs:
// the capacity summary into monthly pressure totals and the dispatch report
// into validated trips.
package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/starrtours/pricingcal/core/model"
)

// The capacity summary template puts four metadata rows above the header row.
// This is a positional contract inherited from the spreadsheet template the
// operators export; keep the fixed offset rather than guessing at headers.
const summaryMetadataRows = 4

// MalformedSummaryError reports a capacity summary that does not follow the
// expected template. The whole extraction fails; no partial totals come back.
type MalformedSummaryError struct {
	Reason string
}

func (e MalformedSummaryError) Error() string {
	return "malformed capacity summary: " + e.Reason
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractMonthlyTotals reads the capacity summary and sums each month's
// counts. The row after the metadata block is the header; any of the twelve
// English month names present there becomes a column of counts. Cells
// contribute their first run of decimal digits; cells with no digits are
// discarded. Months missing from the header are omitted from the result.
func ExtractMonthlyTotals(rows [][]string) (model.MonthlyPressure, error) {
	if len(rows) < summaryMetadataRows+1 {
		return nil, MalformedSummaryError{
			Reason: fmt.Sprintf("expected at least %d rows, got %d", summaryMetadataRows+1, len(rows)),
		}
	}
	header := rows[summaryMetadataRows]
	data := rows[summaryMetadataRows+1:]

	columns := make(map[time.Month]int)
	for i, name := range header {
		for m := time.January; m <= time.December; m++ {
			if name == m.String() {
				if _, seen := columns[m]; !seen {
					columns[m] = i
				}
			}
		}
	}

	totals := make(model.MonthlyPressure, len(columns))
	for month, col := range columns {
		sum := 0
		for _, row := range data {
			if col >= len(row) {
				continue
			}
			match := digitRun.FindString(row[col])
			if match == "" {
				continue
			}
			n, err := strconv.Atoi(match)
			if err != nil {
				return nil, MalformedSummaryError{
					Reason: fmt.Sprintf("%s value %q: %v", month, row[col], err),
				}
			}
			sum += n
		}
		totals[month] = sum
	}
	return totals, nil
}
