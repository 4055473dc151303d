// Package metrics defines the run-level observability contract. Sinks live
// under infra/metrics; the pipeline only fills in RunStats.
package metrics

import (
	"context"
	"time"
)

// RunStats summarizes one calendar generation run.
type RunStats struct {
	RunID                 string
	Year                  int
	Rows                  int
	TripsKept             int
	TripsDroppedNoBooking int
	TripsDroppedBadDate   int
	Bands                 map[string]int // rows per assigned band label
	Duration              time.Duration
	Time                  time.Time
}

// Sink records run statistics for observability purposes.
type Sink interface {
	RecordRun(ctx context.Context, stats RunStats) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordRun(context.Context, RunStats) error { return nil }
