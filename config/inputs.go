package config

import (
	"fmt"
	"time"
)

// Target years the product supports. A business constraint of the report
// templates, not an algorithmic one.
const (
	MinYear = 2020
	MaxYear = 2100
)

// InputsConfig locates the two source reports and picks the target year.
type InputsConfig struct {
	// SummaryPath is the capacity summary (TBN summary) file, .csv or .xlsx.
	SummaryPath string `json:"summary_path"`
	// DispatchPath is the per-trip dispatch report, .csv or .xlsx.
	DispatchPath string `json:"dispatch_path"`
	// Year is the calendar year to generate. Defaults to the current year.
	Year int `json:"year"`
}

// SetDefaults applies sane defaults.
func (c *InputsConfig) SetDefaults() {
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}
}

// Validate checks mandatory fields.
func (c InputsConfig) Validate() error {
	if c.SummaryPath == "" {
		return fmt.Errorf("inputs.summary_path is required")
	}
	if c.DispatchPath == "" {
		return fmt.Errorf("inputs.dispatch_path is required")
	}
	if c.Year < MinYear || c.Year > MaxYear {
		return fmt.Errorf("inputs.year %d outside supported range %d-%d", c.Year, MinYear, MaxYear)
	}
	return nil
}
