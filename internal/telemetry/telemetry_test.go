package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestScopedAPI(t *testing.T) {
	recorder := &Recorder{}
	scoped := NewScopedAPI("pipeline", recorder)

	scoped.ReportCount("education.rows", 12)
	scoped.ReportWarning("gdp.unmatched", "Zambia")
	scoped.ReportBroken("store", "disk full")
	scoped.ReportCount("education.rows", 13)

	n, ok := recorder.Count("pipeline:education.rows")
	require.True(t, ok)
	require.Equal(t, int64(13), n)

	warnings := recorder.Find("warning", "pipeline:gdp.unmatched")
	require.Len(t, warnings, 1)
	require.Equal(t, []any{"Zambia"}, warnings[0].Params)
	require.Len(t, recorder.Find("broken", "pipeline:store"), 1)

	_, ok = recorder.Count("pipeline:missing")
	require.False(t, ok)
}

func TestSlogAPIRecordsCounts(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	api := NewScopedAPI("pipeline", NewSlogAPI(provider.Meter("test")))
	api.ReportCount("education.rows", 12)
	api.ReportCount("gdp.rows", 45)

	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	require.Equal(t, "report_count", rm.ScopeMetrics[0].Metrics[0].Name)

	gauge, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Gauge[int64])
	require.True(t, ok)

	values := map[string]int64{}
	for _, dp := range gauge.DataPoints {
		id, _ := dp.Attributes.Value(attribute.Key("id"))
		values[id.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{
		"pipeline:education.rows": 12,
		"pipeline:gdp.rows":       45,
	}, values)
}

func TestSlogAPIWithoutGauge(t *testing.T) {
	// the zero value only logs
	require.NotPanics(t, func() {
		SlogAPI{}.ReportCount("education.rows", 1)
	})
}
