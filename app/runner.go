// Package app wires the loaders, the pipeline and the output collaborators
// into a single run.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/starrtours/pricingcal/config"
	"github.com/starrtours/pricingcal/core/ingest"
	coremetrics "github.com/starrtours/pricingcal/core/metrics"
	"github.com/starrtours/pricingcal/core/model"
	"github.com/starrtours/pricingcal/core/pricing"
	"github.com/starrtours/pricingcal/core/table"
	"github.com/starrtours/pricingcal/infra/loader"
	"github.com/starrtours/pricingcal/infra/logger"
	inframetrics "github.com/starrtours/pricingcal/infra/metrics"
	"github.com/starrtours/pricingcal/infra/store"
	"github.com/starrtours/pricingcal/pkg/export"
)

// Runner executes one calendar generation run from configuration.
type Runner struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.Sink
}

// New builds a Runner with the configured metrics sinks.
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:  cfg,
		log:  logger.New("runner"),
		sink: inframetrics.NewFromConfig(cfg.Metrics),
	}
}

// Run loads both reports, builds the calendar and writes every configured
// output. Any pipeline error aborts before a single row is emitted.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	runID := uuid.NewString()
	year := r.cfg.Inputs.Year
	r.log.Infof("run %s: generating pricing calendar for %d", runID, year)

	summaryRows, err := loader.Read(r.cfg.Inputs.SummaryPath)
	if err != nil {
		return fmt.Errorf("load capacity summary: %w", err)
	}
	totals, err := ingest.ExtractMonthlyTotals(summaryRows)
	if err != nil {
		return err
	}

	dispatchRows, err := loader.Read(r.cfg.Inputs.DispatchPath)
	if err != nil {
		return fmt.Errorf("load dispatch report: %w", err)
	}
	trips, dropped, err := ingest.NormalizeDispatch(table.FromRows(dispatchRows))
	if err != nil {
		return err
	}
	if dropped.NoBookingID > 0 || dropped.BadDate > 0 {
		r.log.Debugw("dispatch rows excluded", map[string]any{
			"no_booking_id": dropped.NoBookingID,
			"bad_date":      dropped.BadDate,
		})
	}

	rows, err := pricing.BuildCalendar(year, totals, trips)
	if err != nil {
		return err
	}

	outPath := r.cfg.Output.Path
	if outPath == "" {
		outPath = fmt.Sprintf("pricing_calendar_%d.csv", year)
	}
	if err := r.writeOutput(outPath, rows); err != nil {
		return err
	}

	if r.cfg.Store.Enabled {
		if err := r.persist(ctx, runID, year, start, rows); err != nil {
			return err
		}
	}

	stats := runStats(runID, year, rows, trips, dropped, start)
	if err := r.sink.RecordRun(ctx, stats); err != nil {
		// Metrics are best-effort; a sink outage must not fail the run.
		r.log.Errorf("record run metrics: %v", err)
	}

	r.log.Infof("run %s complete: %d rows written to %s in %s", runID, len(rows), outPath, stats.Duration)
	return nil
}

func (r *Runner) writeOutput(path string, rows []model.CalendarRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch r.cfg.Output.Format {
	case "json":
		err = export.WriteJSON(f, rows)
	default:
		err = export.WriteCSV(f, rows)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}

func (r *Runner) persist(ctx context.Context, runID string, year int, start time.Time, rows []model.CalendarRow) error {
	st, err := store.NewSQLiteStore(r.cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer func() { _ = st.Close() }()
	if err := st.SaveRun(ctx, runID, year, start.UTC(), rows); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	return nil
}

func runStats(runID string, year int, rows []model.CalendarRow, trips []model.Trip, dropped ingest.Dropped, start time.Time) coremetrics.RunStats {
	bands := make(map[string]int)
	for _, row := range rows {
		bands[row.Band]++
	}
	return coremetrics.RunStats{
		RunID:                 runID,
		Year:                  year,
		Rows:                  len(rows),
		TripsKept:             len(trips),
		TripsDroppedNoBooking: dropped.NoBookingID,
		TripsDroppedBadDate:   dropped.BadDate,
		Bands:                 bands,
		Duration:              time.Since(start),
		Time:                  start.UTC(),
	}
}
