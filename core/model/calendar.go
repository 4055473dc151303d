package model

import (
	"strconv"
	"time"
)

// MonthlyPressure maps a calendar month to the total coach demand counted in
// the capacity summary for that month. Months absent from the summary are
// simply absent from the map and read as zero.
type MonthlyPressure map[time.Month]int

// MaxTotal returns the largest monthly total, or 0 for an empty map.
func (m MonthlyPressure) MaxTotal() int {
	max := 0
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return max
}

// Trip is one validated dispatch record: the calendar day the trip departs
// and its heuristic complexity score.
type Trip struct {
	Date       time.Time // midnight UTC, no time-of-day component
	Complexity int       // -1 leisure, 0 neutral, 1 urban
}

// Season is a quarter-of-year label derived from the month.
type Season string

const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
)

// SeasonOf maps a month to its season. December wraps into Winter.
func SeasonOf(m time.Month) Season {
	switch m {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Fall
	}
}

// DayFeatures aggregates everything the classifier needs to know about one
// calendar day. Computed fresh per day, never persisted on its own.
type DayFeatures struct {
	Date          time.Time
	Season        Season
	Weekday       time.Weekday
	CoachPressure float64 // month total / max month total, in [0,1]
	TripCount     int
	AvgComplexity float64 // mean of trip complexities, 0 when no trips
}

// CalendarRow is the exported record, one per day of the target year.
type CalendarRow struct {
	Date          time.Time `json:"full_date"`
	FormattedDate string    `json:"formatted_date"`
	Month         string    `json:"month"`
	Weekday       string    `json:"weekday"`
	Season        Season    `json:"season"`
	CoachPressure float64   `json:"coach_pressure"`
	TripsCount    int       `json:"trips_scheduled"`
	AvgComplexity float64   `json:"avg_trip_complexity"`
	Band          string    `json:"suggested_band"`
	Reason        string    `json:"reason"`
}

// FormatDate renders "January 2" style dates without day padding. Built from
// the month name and the day integer directly so the output does not depend
// on platform strftime quirks.
func FormatDate(t time.Time) string {
	return t.Month().String() + " " + strconv.Itoa(t.Day())
}

// Day truncates a timestamp to midnight UTC so trips group by calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
