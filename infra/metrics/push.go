package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	coremetrics "github.com/starrtours/pricingcal/core/metrics"
)

func itoa(n int) string { return strconv.Itoa(n) }

// PushSink publishes run statistics to a Prometheus Pushgateway. A one-shot
// batch run exposes no scrape endpoint, so push is the only prom-compatible
// delivery.
type PushSink struct {
	url string
	job string
}

// NewPushSink creates a sink targeting the configured Pushgateway.
func NewPushSink(cfg coremetrics.Config) *PushSink {
	return &PushSink{url: cfg.PushgatewayURL, job: cfg.JobName}
}

// RecordRun pushes the run gauges grouped by year and run ID.
func (s *PushSink) RecordRun(ctx context.Context, stats coremetrics.RunStats) error {
	reg := prometheus.NewRegistry()

	rows := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pricing_calendar_rows",
		Help: "Calendar rows generated by the last run",
	})
	kept := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pricing_trips_kept",
		Help: "Dispatch rows surviving normalization",
	})
	dropped := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pricing_trips_dropped",
		Help: "Dispatch rows excluded during normalization",
	}, []string{"cause"})
	bands := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pricing_band_rows",
		Help: "Calendar rows per assigned band",
	}, []string{"band"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pricing_run_duration_seconds",
		Help: "Wall time of the last run",
	})
	reg.MustRegister(rows, kept, dropped, bands, duration)

	rows.Set(float64(stats.Rows))
	kept.Set(float64(stats.TripsKept))
	dropped.WithLabelValues("no_booking_id").Set(float64(stats.TripsDroppedNoBooking))
	dropped.WithLabelValues("bad_date").Set(float64(stats.TripsDroppedBadDate))
	for band, n := range stats.Bands {
		bands.WithLabelValues(band).Set(float64(n))
	}
	duration.Set(stats.Duration.Seconds())

	return push.New(s.url, s.job).
		Gatherer(reg).
		Grouping("year", itoa(stats.Year)).
		Grouping("run_id", stats.RunID).
		PushContext(ctx)
}
