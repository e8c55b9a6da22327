package modelrunner

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InferenceGateway adapts APIClient to domain.InferenceGateway.
type InferenceGateway struct {
	client APIClient
}

// NewInferenceGateway creates a new InferenceGateway.
func NewInferenceGateway(client APIClient) InferenceGateway {
	return InferenceGateway{client: client}
}

// StreamChat implements domain.InferenceGateway.
func (g InferenceGateway) StreamChat(ctx context.Context, credential string, req domain.LLMChatRequest, onIncrement domain.StreamIncrementCallback) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", req.Model),
		attribute.String("llm.kind", string(req.Kind)),
		attribute.String("llm.reasoning.mechanism", string(req.Mechanism)),
		attribute.Bool("llm.reasoning.enabled", req.EnableReasoning),
	))
	defer span.End()

	var increments int
	err := g.client.ChatStream(spanCtx, credential, BuildChatRequest(req), func(inc domain.StreamIncrement) error {
		increments++
		return onIncrement(inc)
	})
	span.SetAttributes(attribute.Int("llm.stream.increments", increments))
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// SubmitImage implements domain.InferenceGateway.
func (g InferenceGateway) SubmitImage(ctx context.Context, credential string, params domain.ImageParams) (domain.ImageJob, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("image.model", params.Model),
		attribute.Int("image.loras", len(params.ActiveLoras())),
	))
	defer span.End()

	taskID, err := g.client.SubmitImage(spanCtx, credential, BuildImageRequest(params))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ImageJob{}, err
	}
	span.SetAttributes(attribute.String("image.task_id", taskID))

	return domain.ImageJob{ID: taskID, Status: domain.ImageTaskStatus_Running}, nil
}

// GetImageTask implements domain.InferenceGateway.
func (g InferenceGateway) GetImageTask(ctx context.Context, credential string, jobID string) (domain.ImageJob, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("image.task_id", jobID),
	))
	defer span.End()

	resp, err := g.client.TaskStatus(spanCtx, credential, jobID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ImageJob{}, err
	}

	job := domain.ImageJob{
		ID:     jobID,
		Status: toImageTaskStatus(resp.TaskStatus),
	}
	if job.Status == domain.ImageTaskStatus_Succeeded {
		job.ResultURLs = resp.OutputImages
	}
	span.SetAttributes(attribute.String("image.task_status", string(job.Status)))
	return job, nil
}

// toImageTaskStatus maps the upstream state. Anything that is neither a
// success nor a failure is still running.
func toImageTaskStatus(status string) domain.ImageTaskStatus {
	switch strings.ToUpper(status) {
	case TaskStatusSucceed, "SUCCEEDED":
		return domain.ImageTaskStatus_Succeeded
	case TaskStatusFailed:
		return domain.ImageTaskStatus_Failed
	default:
		return domain.ImageTaskStatus_Running
	}
}

// InitInferenceGateway is a component that initializes the inference gateway client.
type InitInferenceGateway struct {
	HttpClient      *http.Client  `resolve:""`
	Logger          *log.Logger   `resolve:""`
	BaseURL         string        `config:"INFERENCE_BASE_URL" default:"https://api-inference.modelscope.cn"`
	SubmitRetryWait time.Duration `config:"IMAGE_SUBMIT_RETRY_WAIT" default:"1s"`
}

// Initialize registers the gateway as a domain.InferenceGateway.
func (i InitInferenceGateway) Initialize(ctx context.Context) (context.Context, error) {
	retrier := NewSubmissionRetrier(i.HttpClient, i.SubmitRetryWait, i.Logger)
	client := NewAPIClient(i.BaseURL, i.HttpClient, retrier)
	depend.Register[domain.InferenceGateway](NewInferenceGateway(client))
	return ctx, nil
}
