package config

import "fmt"

// OutputConfig selects where and how the calendar is written.
type OutputConfig struct {
	// Path of the output file. Empty means pricing_calendar_<year>.csv in
	// the working directory.
	Path string `json:"path"`
	// Format is "csv" or "json".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate checks the format selection.
func (c OutputConfig) Validate() error {
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("unknown output format %s", c.Format)
	}
	return nil
}
