// Package pricing builds the year calendar: per-day demand features and the
// discount band each day lands in.
package pricing

import (
	"math"
	"time"

	"github.com/starrtours/pricingcal/core/model"
)

// Pressure score steps. Fixed business heuristics; see bandCuts.
const (
	pressureHigh = 0.9
	pressureMid  = 0.7
	pressureLow  = 0.5
)

type bandCut struct {
	min    float64
	label  string
	reason string
}

// bandCuts maps a day's score to its discount band, highest cut first. The
// final catch-all makes classification total: every score gets a band.
var bandCuts = []bandCut{
	{7, "B (50%)", "High volume, peak season, complex trips"},
	{6, "C+ (45%)", "Very active day with high potential"},
	{5, "C (40%)", "Healthy demand with multiple trip drivers"},
	{4, "D+ (35%)", "Mid-level day with moderate complexity"},
	{3, "D (30%)", "Low trip count but seasonal factors"},
	{math.Inf(-1), "E+ (25%)", "Soft demand day with low pressure and simple trips"},
}

// Score computes a day's demand score. Pressure, weekday, season and trip
// count contribute integer steps; the complexity mean is added as-is.
func Score(f model.DayFeatures) float64 {
	score := 0.0
	switch {
	case f.CoachPressure >= pressureHigh:
		score += 3
	case f.CoachPressure >= pressureMid:
		score += 2
	case f.CoachPressure >= pressureLow:
		score += 1
	}
	switch f.Weekday {
	case time.Friday, time.Saturday, time.Sunday:
		score++
	}
	switch f.Season {
	case model.Winter, model.Fall:
		score++
	case model.Spring:
		score += 2
	}
	switch {
	case f.TripCount >= 5:
		score += 2
	case f.TripCount >= 3:
		score++
	}
	return score + f.AvgComplexity
}

// Classify maps a day's features to its band label and reason. Pure and
// total: every input yields exactly one of the six bands.
func Classify(f model.DayFeatures) (band, reason string) {
	score := Score(f)
	for _, cut := range bandCuts {
		if score >= cut.min {
			return cut.label, cut.reason
		}
	}
	// Unreachable: the last cut accepts any score.
	last := bandCuts[len(bandCuts)-1]
	return last.label, last.reason
}
