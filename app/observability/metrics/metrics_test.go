package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*AppMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewAppMetrics(mp.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func findMetric(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}
	t.Fatalf("metric %s not found", name)
	return metricdata.Metrics{}
}

func TestAppMetrics_RecordQuery(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordQuery(ctx, OutcomeSuccess)
	m.RecordQuery(ctx, OutcomeSuccess)
	m.RecordQuery(ctx, OutcomeNoResults)

	sum, ok := findMetric(t, reader, "place_queries_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
		counts[outcome.AsString()] = dp.Value
	}
	assert.Equal(t, int64(2), counts[OutcomeSuccess])
	assert.Equal(t, int64(1), counts[OutcomeNoResults])
}

func TestAppMetrics_RecordProviderCallAndFallback(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordProviderCall(ctx, "google_maps", "geocode", time.Now().Add(-50*time.Millisecond))
	m.RecordFallback(ctx, "ollama")

	hist, ok := findMetric(t, reader, "provider_call_duration_seconds").Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.GreaterOrEqual(t, hist.DataPoints[0].Sum, 0.05)

	fallbacks, ok := findMetric(t, reader, "description_fallbacks_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, fallbacks.DataPoints, 1)
	assert.Equal(t, int64(1), fallbacks.DataPoints[0].Value)
}

func TestAppMetrics_NilSafe(t *testing.T) {
	var m *AppMetrics
	assert.NotPanics(t, func() {
		m.RecordQuery(context.Background(), OutcomeSuccess)
		m.RecordFallback(context.Background(), "ollama")
		m.RecordProviderCall(context.Background(), "google_maps", "geocode", time.Now())
	})
}
