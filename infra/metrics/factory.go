package metrics

import (
	coremetrics "github.com/starrtours/pricingcal/core/metrics"
)

// NewFromConfig assembles the configured sinks into a single Sink. With no
// sink enabled the result is a NopSink.
func NewFromConfig(cfg coremetrics.Config) coremetrics.Sink {
	var sinks []coremetrics.Sink
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
	}
	if cfg.PushgatewayEnabled {
		sinks = append(sinks, NewPushSink(cfg))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}
	case 1:
		return sinks[0]
	default:
		return NewMultiSink(sinks...)
	}
}
