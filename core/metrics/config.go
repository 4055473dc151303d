package metrics

import "fmt"

// Config selects and configures the metrics sinks.
type Config struct {
	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`

	// A one-shot run has nothing for Prometheus to scrape, so prom metrics
	// go through a Pushgateway instead of an exporter endpoint.
	PushgatewayEnabled bool   `json:"pushgateway_enabled"`
	PushgatewayURL     string `json:"pushgateway_url"`
	JobName            string `json:"job_name"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.JobName == "" {
		c.JobName = "pricingcal"
	}
}

// Validate checks that enabled sinks have their endpoints configured.
func (c Config) Validate() error {
	if c.InfluxEnabled && c.InfluxURL == "" {
		return fmt.Errorf("influx_url is required when influx is enabled")
	}
	if c.PushgatewayEnabled && c.PushgatewayURL == "" {
		return fmt.Errorf("pushgateway_url is required when pushgateway is enabled")
	}
	return nil
}
