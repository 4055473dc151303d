// Package scenarios runs yaml-defined pricing fixtures through the full
// pipeline, dispatch normalization included. QA keeps these fixtures in sync
// with the band heuristics the business signs off on.
package scenarios

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/starrtours/pricingcal/core/model"
)

type TripDef struct {
	BookingID   string `yaml:"booking_id"`
	Departure   string `yaml:"departure"`
	Route       string `yaml:"route,omitempty"`
	Destination string `yaml:"destination,omitempty"`
	Group       string `yaml:"group,omitempty"`
}

type ExpectedDay struct {
	Date  string `yaml:"date"`
	Band  string `yaml:"band"`
	Trips int    `yaml:"trips"`
}

type Scenario struct {
	Name          string        `yaml:"name"`
	Description   string        `yaml:"description,omitempty"`
	Year          int           `yaml:"year"`
	MonthlyTotals map[int]int   `yaml:"monthly_totals"`
	Trips         []TripDef     `yaml:"trips"`
	Expected      []ExpectedDay `yaml:"expected"`
}

// Totals converts the yaml month numbers into the pipeline's pressure map.
func (s *Scenario) Totals() model.MonthlyPressure {
	totals := make(model.MonthlyPressure, len(s.MonthlyTotals))
	for m, v := range s.MonthlyTotals {
		totals[time.Month(m)] = v
	}
	return totals
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
