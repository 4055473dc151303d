package metrics

import (
	"context"
	"errors"

	coremetrics "github.com/starrtours/pricingcal/core/metrics"
)

// MultiSink fans run statistics out to several sinks. Every sink sees the
// stats even when an earlier one fails; errors are joined.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordRun(ctx context.Context, stats coremetrics.RunStats) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordRun(ctx, stats); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
