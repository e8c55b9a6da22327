package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	StreamIncrements      metric.Int64Counter
	ImageSubmissions      metric.Int64Counter
	ImageTaskQueries      metric.Int64Counter
	ImageJobsFinished     metric.Int64Counter
	StreamIncrementsBytes metric.Int64Counter
)

func init() {
	var err error
	// Increments delivered to streaming callers, by kind
	StreamIncrements, err = meter.Int64Counter(
		"stream_increments_total",
		metric.WithDescription("Total reasoning and answer increments streamed"),
	)
	if err != nil {
		panic(err)
	}
	StreamIncrementsBytes, err = meter.Int64Counter(
		"stream_increments_bytes_total",
		metric.WithDescription("Total bytes of streamed reasoning and answer text"),
		metric.WithUnit("By"),
	)
	if err != nil {
		panic(err)
	}
	ImageSubmissions, err = meter.Int64Counter(
		"image_submissions_total",
		metric.WithDescription("Total image generation submissions, by outcome"),
	)
	if err != nil {
		panic(err)
	}
	ImageTaskQueries, err = meter.Int64Counter(
		"image_task_queries_total",
		metric.WithDescription("Total image task status queries issued by pollers"),
	)
	if err != nil {
		panic(err)
	}
	ImageJobsFinished, err = meter.Int64Counter(
		"image_jobs_finished_total",
		metric.WithDescription("Total tracked image jobs that left the polling state, by final state"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordStreamIncrement records one streamed increment.
func RecordStreamIncrement(ctx context.Context, module string, inc domain.StreamIncrement) {
	attrs := metric.WithAttributes(
		attribute.String("module", module),
		attribute.String("kind", string(inc.Kind)),
	)
	StreamIncrements.Add(ctx, 1, attrs)
	StreamIncrementsBytes.Add(ctx, int64(len(inc.Text)), attrs)
}

// RecordImageSubmission records the outcome of an image submission.
func RecordImageSubmission(ctx context.Context, err error) {
	outcome := "accepted"
	if err != nil {
		outcome = "failed"
	}
	ImageSubmissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordImageTaskQuery records one status query and whether it failed.
func RecordImageTaskQuery(ctx context.Context, err error) {
	ImageTaskQueries.Add(ctx, 1, metric.WithAttributes(attribute.Bool("error", err != nil)))
}

// RecordImageJobFinished records the final state of a poller.
func RecordImageJobFinished(ctx context.Context, state PollState) {
	ImageJobsFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("state", string(state))))
}
