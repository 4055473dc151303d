package pricing

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/starrtours/pricingcal/core/model"
)

// ErrZeroPressure is returned when the monthly totals are empty or all zero,
// leaving the pressure ratio undefined.
var ErrZeroPressure = errors.New("monthly pressure totals are empty or all zero")

// BuildCalendar produces one CalendarRow per day of the target year, January
// 1 through December 31 inclusive. Days are independent of each other; rows
// come back in date order.
func BuildCalendar(year int, totals model.MonthlyPressure, trips []model.Trip) ([]model.CalendarRow, error) {
	maxTotal := totals.MaxTotal()
	if maxTotal <= 0 {
		return nil, ErrZeroPressure
	}

	byDay := make(map[time.Time][]float64)
	for _, t := range trips {
		byDay[t.Date] = append(byDay[t.Date], float64(t.Complexity))
	}

	rows := make([]model.CalendarRow, 0, 366)
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		f := dayFeatures(d, totals, maxTotal, byDay[d])
		band, reason := Classify(f)
		rows = append(rows, model.CalendarRow{
			Date:          f.Date,
			FormattedDate: model.FormatDate(f.Date),
			Month:         f.Date.Month().String(),
			Weekday:       f.Weekday.String(),
			Season:        f.Season,
			CoachPressure: round2(f.CoachPressure),
			TripsCount:    f.TripCount,
			AvgComplexity: round2(f.AvgComplexity),
			Band:          band,
			Reason:        reason,
		})
	}
	return rows, nil
}

func dayFeatures(day time.Time, totals model.MonthlyPressure, maxTotal int, complexities []float64) model.DayFeatures {
	avg := 0.0
	if len(complexities) > 0 {
		avg = stat.Mean(complexities, nil)
	}
	return model.DayFeatures{
		Date:          day,
		Season:        model.SeasonOf(day.Month()),
		Weekday:       day.Weekday(),
		CoachPressure: float64(totals[day.Month()]) / float64(maxTotal),
		TripCount:     len(complexities),
		AvgComplexity: avg,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
