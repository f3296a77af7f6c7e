// Package metrics wires OpenTelemetry metrics to a Prometheus registry and
// holds shared instrument settings.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope used by the scanner's instruments.
const MeterName = "cmsscan"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

// NewMeterProvider creates a MeterProvider whose instruments are exported
// through reg. Pass prometheus.DefaultRegisterer to serve them with promhttp.Handler.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Meter returns the scanner's meter from mp.
func Meter(mp metric.MeterProvider) metric.Meter {
	return mp.Meter(MeterName)
}
