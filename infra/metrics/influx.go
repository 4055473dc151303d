package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/starrtours/pricingcal/core/metrics"
	"github.com/starrtours/pricingcal/infra/logger"
)

// InfluxSink writes run statistics to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	client := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails, so metrics trouble never blocks a run.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes one summary point plus one point per band.
func (s *InfluxSink) RecordRun(ctx context.Context, stats coremetrics.RunStats) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	points := make([]*write.Point, 0, 1+len(stats.Bands))
	points = append(points, influxdb2.NewPoint("pricing_run",
		map[string]string{"year": itoa(stats.Year)},
		map[string]any{
			"run_id":                   stats.RunID,
			"rows":                     stats.Rows,
			"trips_kept":               stats.TripsKept,
			"trips_dropped_no_booking": stats.TripsDroppedNoBooking,
			"trips_dropped_bad_date":   stats.TripsDroppedBadDate,
			"duration_ms":              stats.Duration.Milliseconds(),
		},
		stats.Time,
	))
	for band, rows := range stats.Bands {
		points = append(points, influxdb2.NewPoint("pricing_band_rows",
			map[string]string{"year": itoa(stats.Year), "band": band},
			map[string]any{"rows": rows},
			stats.Time,
		))
	}
	if err := s.writeAPI.WritePoint(ctx, points...); err != nil {
		s.log.Errorf("influx write: %v", err)
		return err
	}
	return nil
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
