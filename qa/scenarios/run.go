package scenarios

import (
	"github.com/starrtours/pricingcal/core/ingest"
	"github.com/starrtours/pricingcal/core/model"
	"github.com/starrtours/pricingcal/core/pricing"
	"github.com/starrtours/pricingcal/core/table"
)

// Run pushes the scenario through dispatch normalization and calendar
// construction, exactly the path a production run takes after file loading.
func Run(sc *Scenario) ([]model.CalendarRow, error) {
	rows := [][]string{{
		ingest.ColBookingID, ingest.ColDeparture, ingest.ColRoute,
		ingest.ColDestination, ingest.ColGroupName,
	}}
	for _, tr := range sc.Trips {
		rows = append(rows, []string{tr.BookingID, tr.Departure, tr.Route, tr.Destination, tr.Group})
	}
	trips, _, err := ingest.NormalizeDispatch(table.FromRows(rows))
	if err != nil {
		return nil, err
	}
	return pricing.BuildCalendar(sc.Year, sc.Totals(), trips)
}
