package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetImageTask defines the interface for the GetImageTask use case
type GetImageTask interface {
	// Query returns the current status of a job with a single upstream query.
	Query(ctx context.Context, credential, jobID string) (domain.ImageJob, error)
}

// GetImageTaskImpl is the implementation of the GetImageTask use case
type GetImageTaskImpl struct {
	gateway domain.InferenceGateway
}

// NewGetImageTaskImpl creates a new instance of GetImageTaskImpl
func NewGetImageTaskImpl(gateway domain.InferenceGateway) GetImageTaskImpl {
	return GetImageTaskImpl{gateway: gateway}
}

// Query implements GetImageTask.
func (uc GetImageTaskImpl) Query(ctx context.Context, credential, jobID string) (domain.ImageJob, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if credential == "" {
		err := domain.NewMissingCredentialErr()
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ImageJob{}, err
	}
	if jobID == "" {
		err := domain.NewValidationErr("job id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ImageJob{}, err
	}

	job, err := uc.gateway.GetImageTask(spanCtx, credential, jobID)
	RecordImageTaskQuery(spanCtx, err)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ImageJob{}, err
	}
	return job, nil
}

// InitGetImageTask is the initializer for the GetImageTask use case
type InitGetImageTask struct {
	Gateway domain.InferenceGateway `resolve:""`
}

// Initialize registers the GetImageTask use case in the dependency container
func (i InitGetImageTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetImageTask](NewGetImageTaskImpl(i.Gateway))
	return ctx, nil
}
