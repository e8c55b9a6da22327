package telemetry

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// streamingRoutes answer with a long-lived chunked body; their request
// durations measure the whole generation, not just time to first byte.
var streamingRoutes = map[string]bool{
	"POST /api/v1/chat":   true,
	"POST /api/v1/vision": true,
}

// WithHttpMetricAttributes labels HTTP server metrics with the route and
// whether the route streams model output.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	route := getHttpRoute(r)
	return []attribute.KeyValue{
		semconv.HTTPRoute(route),
		attribute.Bool("studio.streaming", streamingRoutes[route]),
	}
}

// durationBoundaries cover fast JSON endpoints as well as chat and vision
// streams that can run for minutes.
var durationBoundaries = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(15*time.Second),
		)),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "*duration*"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: durationBoundaries},
			},
		)),
	)
	return meterProvider, exporter, nil
}
