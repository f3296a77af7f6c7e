package metrics_test

import (
	"cmsscan/pkg/metrics"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(context.Background()) }()

	counter, err := metrics.Meter(mp).Int64Counter("cmsscan.test.events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "cmsscan_test_events_total" {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "counter was not exported")
}
