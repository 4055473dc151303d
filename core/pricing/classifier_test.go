package pricing

import (
	"testing"
	"time"

	"github.com/starrtours/pricingcal/core/model"
)

func feat(pressure float64, wd time.Weekday, season model.Season, trips int, avg float64) model.DayFeatures {
	return model.DayFeatures{
		Date:          time.Date(2023, time.January, 6, 0, 0, 0, 0, time.UTC),
		Season:        season,
		Weekday:       wd,
		CoachPressure: pressure,
		TripCount:     trips,
		AvgComplexity: avg,
	}
}

func TestScoreWinterFriday(t *testing.T) {
	// pressure 1.0 (+3), Friday (+1), Winter (+1), 1 trip (+0), complexity +1.
	f := feat(1.0, time.Friday, model.Winter, 1, 1)
	if got := Score(f); got != 6 {
		t.Fatalf("expected score 6, got %v", got)
	}
	band, reason := Classify(f)
	if band != "C+ (45%)" {
		t.Fatalf("expected C+ (45%%), got %s", band)
	}
	if reason != "Very active day with high potential" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestClassifyCuts(t *testing.T) {
	cases := []struct {
		f    model.DayFeatures
		band string
	}{
		// 3+1+2+2 = 8
		{feat(0.95, time.Saturday, model.Spring, 6, 0), "B (50%)"},
		// 3+1+2+2-1 = 7, still B at the boundary
		{feat(0.95, time.Saturday, model.Spring, 6, -1), "B (50%)"},
		// 2+1+2+1 = 6
		{feat(0.7, time.Sunday, model.Spring, 3, 0), "C+ (45%)"},
		// 2+1+2 = 5
		{feat(0.7, time.Sunday, model.Spring, 0, 0), "C (40%)"},
		// 3+1 = 4
		{feat(0.9, time.Friday, model.Summer, 0, 0), "D+ (35%)"},
		// 3 alone
		{feat(0.9, time.Monday, model.Summer, 0, 0), "D (30%)"},
		// 1+1+1 = 3
		{feat(0.5, time.Friday, model.Fall, 1, 0), "D (30%)"},
		// 0+0+0+0 = 0
		{feat(0.1, time.Tuesday, model.Summer, 0, 0), "E+ (25%)"},
		// negative score still classifies
		{feat(0, time.Tuesday, model.Summer, 0, -1), "E+ (25%)"},
	}
	for i, tc := range cases {
		band, _ := Classify(tc.f)
		if band != tc.band {
			t.Fatalf("case %d: expected %s, got %s (score %v)", i, tc.band, band, Score(tc.f))
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	known := map[string]bool{
		"B (50%)": true, "C+ (45%)": true, "C (40%)": true,
		"D+ (35%)": true, "D (30%)": true, "E+ (25%)": true,
	}
	seasons := []model.Season{model.Winter, model.Spring, model.Summer, model.Fall}
	for p := 0.0; p <= 1.0; p += 0.1 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			for _, s := range seasons {
				for _, trips := range []int{0, 2, 3, 5, 9} {
					for _, avg := range []float64{-1, -0.5, 0, 0.5, 1} {
						band, reason := Classify(feat(p, wd, s, trips, avg))
						if !known[band] {
							t.Fatalf("unknown band %q", band)
						}
						if reason == "" {
							t.Fatalf("empty reason for band %q", band)
						}
					}
				}
			}
		}
	}
}

func TestScoreMonotonicInPressure(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		prev := -100.0
		for p := 0.0; p <= 1.001; p += 0.05 {
			s := Score(feat(p, wd, model.Fall, 2, 0.5))
			if s < prev {
				t.Fatalf("score dropped from %v to %v at pressure %v", prev, s, p)
			}
			prev = s
		}
	}
}
